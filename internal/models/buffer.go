package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedOutput is returned when a Buffer is rendered in an unknown format.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// Output formats accepted by Render.
const (
	OutputPath = "path"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Outputs lists every supported output format.
var Outputs = []string{OutputPath, OutputYAML, OutputJSON}

// Buffer describes an input buffer on disk.
type Buffer struct {
	Path      string    `yaml:"path" json:"path"`
	Dir       string    `yaml:"dir" json:"dir"`
	CreatedAt time.Time `yaml:"createdAt" json:"createdAt"`
	Sha256    string    `yaml:"sha256" json:"sha256"`
	Size      int64     `yaml:"size" json:"size"`
}

// Render encodes a single buffer in the requested format.
func (b Buffer) Render(format string) (string, error) {
	return encode(format, b, []string{b.Path})
}

// RenderList encodes buffers as a list. The path format prints one path per line.
func RenderList(format string, buffers []Buffer) (string, error) {
	if buffers == nil {
		buffers = []Buffer{}
	}

	paths := make([]string, 0, len(buffers))
	for _, b := range buffers {
		paths = append(paths, b.Path)
	}

	return encode(format, buffers, paths)
}

func encode(format string, v any, paths []string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", OutputPath:
		if len(paths) == 0 {
			return "", nil
		}
		return strings.Join(paths, "\n") + "\n", nil
	case OutputYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnsupportedOutput, format)
	}
}
