package main

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/shini4i/ccinput/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogging(t *testing.T) {
	initLogging(true)
	assert.True(t, log.IsEnabledFor(logging.DEBUG))

	initLogging(false)
	assert.False(t, log.IsEnabledFor(logging.DEBUG))
	assert.True(t, log.IsEnabledFor(logging.INFO))
}

func TestNewService(t *testing.T) {
	cfg, err := app.NewConfig(app.WithTempDirBase(t.TempDir()))
	require.NoError(t, err)

	svc, err := newService(cfg)
	require.NoError(t, err)

	buffers, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, buffers)
}
