package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freight-api/pkg/logger"
)

func TestComponent_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log := l.Component("containers")
	log.Info().Int("packed", 2).Msg("optimización de contenedores")
	log.Debug().Msg("no debe aparecer")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "containers", entry["component"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 2, entry["packed"])
}

func TestNew_NivelDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "DEBUG", Output: &buf})
	l.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
