package logging

import (
	"bytes"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupSetsGlobalLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"high verbosity is trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupWithWriter(tt.verbosity, io.Discard)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupWithWriter(1, &buf)

	logger := GetLogger("demo")
	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"demo"`)
	assert.Contains(t, buf.String(), "hello")
}
