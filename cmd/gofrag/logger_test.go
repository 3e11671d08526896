package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(Te *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(Te.TempDir(), "gofrag.log")
	undo, err := initLogger(logOptions{Level: "info", Format: "json", File: file}, zapcore.AddSync(&buf))
	require.NoError(Te, err)

	zap.L().Info("from the library", zap.String("system", "ureas_O"))
	getLogger().Debug("not shown")
	undo()

	assert.Contains(Te, buf.String(), `"msg":"from the library"`)
	assert.Contains(Te, buf.String(), `"logger":"gofrag"`)
	assert.NotContains(Te, buf.String(), "not shown")
	b, err := os.ReadFile(file)
	require.NoError(Te, err)
	assert.Contains(Te, string(b), "ureas_O")

	//After undo, nothing reaches buf.
	buf.Reset()
	zap.L().Info("after")
	getLogger().Info("after")
	assert.Empty(Te, buf.String())
}

func TestInitLoggerDefaults(Te *testing.T) {
	var buf bytes.Buffer
	undo, err := initLogger(logOptions{}, zapcore.AddSync(&buf))
	require.NoError(Te, err)
	defer undo()
	getLogger().Info("quiet")
	getLogger().Warn("loud")
	assert.NotContains(Te, buf.String(), "quiet")
	assert.Contains(Te, buf.String(), "loud")
}

func TestEncoder(Te *testing.T) {
	for _, f := range []string{"", "console", "JSON"} {
		_, err := encoder(f)
		assert.NoError(Te, err, f)
	}
	_, err := encoder("xml")
	assert.Error(Te, err)
}
