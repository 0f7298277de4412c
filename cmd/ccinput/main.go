package main

import (
	"os"

	"github.com/op/go-logging"
	"github.com/shini4i/ccinput/cmd/ccinput/command"
	"github.com/shini4i/ccinput/internal/app"
)

var (
	version = "local"
	log     = logging.MustGetLogger("ccinput")
	// message only, no level or timestamp
	format = logging.MustStringFormatter(
		`%{color}%{message}%{color:reset}`,
	)
)

func main() {
	opts := command.Options{
		Version:     version,
		InitLogging: initLogging,
		NewService:  newService,
	}

	if err := command.Execute(opts, nil); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func initLogging(debug bool) {
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format),
	)

	if debug {
		backend.SetLevel(logging.DEBUG, "")
	} else {
		backend.SetLevel(logging.INFO, "")
	}

	logging.SetBackend(backend)
}

func newService(cfg app.Config) (command.Service, error) {
	log.Debugf("===> Running ccinput version [%s]", cfg.Version)

	svc, err := app.New(cfg, app.Dependencies{Logger: log})
	if err != nil {
		return nil, err
	}

	return svc, nil
}
