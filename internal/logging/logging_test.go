package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("warn", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.WithField("row", 3).Warn("create_failed_422")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "create_failed_422")
	assert.Contains(t, out, "row=3")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("loud", nil)
	assert.Error(t, err)
}
