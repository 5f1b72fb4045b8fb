package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/scrollscene/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var errDiskFull = errors.New("disk full")

// failingWriter 模拟写满的磁盘
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteReport_WriteError(t *testing.T) {
	report := &trace.Report{FPS: 60, Duration: 1}
	err := writeReport(failingWriter{}, report)
	require.Error(t, err)
}

func TestRun_OutFile(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "scroll.yaml")
	outPath := filepath.Join(dir, "frames.yaml")
	require.NoError(t, os.WriteFile(tracePath, []byte("- {t: 0, offset: 0}\n- {t: 0.5, offset: 1}\n"), 0o644))

	require.NoError(t, run("", tracePath, outPath, trace.Options{FPS: 20, Every: 1, Tail: 0.5}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var report struct {
		FPS    float64     `yaml:"fps"`
		Frames []yaml.Node `yaml:"frames"`
	}
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, 20.0, report.FPS)
	assert.NotEmpty(t, report.Frames)
}

func TestRun_OutDirMissing(t *testing.T) {
	dir := t.TempDir()
	tracePath := filepath.Join(dir, "scroll.yaml")
	require.NoError(t, os.WriteFile(tracePath, []byte("- {t: 0, offset: 0}\n- {t: 1, offset: 1}\n"), 0o644))

	err := run("", tracePath, filepath.Join(dir, "missing", "frames.yaml"), trace.Options{FPS: 10, Every: 1})
	assert.Error(t, err)
}
