// cmd/telemetry/main_test.go
package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/modbus-telemetry/internal/exporter"
	"github.com/tamzrod/modbus-telemetry/internal/registermap"
)

func TestRun_DemoWritesIdenticalOutputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.json")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-demo", "-out", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	file, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, stdout.Bytes(), file)

	doc, err := exporter.Load(path, registermap.Default())
	require.NoError(t, err)
	assert.Zero(t, doc.InvalidCount())
}

func TestRun_TextFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.txt")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-demo", "-format", "text", "-out", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "ambient: 23.5 °C")
}

func TestRun_RawFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.raw.txt")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-demo", "-format", "raw", "-out", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "=== RAW REGISTERS ===")
	assert.Contains(t, stdout.String(), "temperature.ambient")
}

func TestRun_TransportFailure(t *testing.T) {
	// a port nobody listens on
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	path := filepath.Join(t.TempDir(), "telemetry.json")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{
		"-host", "127.0.0.1",
		"-port", strconv.Itoa(port),
		"-timeout", "500",
		"-out", path,
	}, &stdout, &stderr)

	assert.Equal(t, exitTransport, code)
	assert.Empty(t, stdout.String(), "no document on transport failure")
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_SerializationFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "telemetry.json")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-demo", "-out", path}, &stdout, &stderr)

	assert.Equal(t, exitSerialization, code)
	assert.NotEmpty(t, stdout.String(), "stdout rendering survives a file failure")
}

func TestRun_IntervalAllReadsFail(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	path := filepath.Join(t.TempDir(), "telemetry.json")
	var stdout, stderr bytes.Buffer

	code := run(ctx, []string{
		"-host", "127.0.0.1",
		"-port", strconv.Itoa(port),
		"-timeout", "200",
		"-interval", "300",
		"-out", path,
	}, &stdout, &stderr)

	assert.Equal(t, exitTransport, code, "no cycle produced a document")
	assert.Contains(t, stderr.String(), "read failed")
	assert.Empty(t, stdout.String())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_IntervalDemo(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 350*time.Millisecond)
	defer cancel()

	path := filepath.Join(t.TempDir(), "telemetry.json")
	var stdout, stderr bytes.Buffer

	code := run(ctx, []string{"-demo", "-timeout", "50", "-interval", "100", "-out", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	doc, err := exporter.Load(path, registermap.Default())
	require.NoError(t, err)
	assert.Zero(t, doc.InvalidCount())
}

func TestRun_IntervalFileNeverWritten(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()

	path := filepath.Join(t.TempDir(), "no-such-dir", "telemetry.json")
	var stdout, stderr bytes.Buffer

	code := run(ctx, []string{"-demo", "-timeout", "50", "-interval", "100", "-out", path}, &stdout, &stderr)

	assert.Equal(t, exitSerialization, code)
	assert.NotEmpty(t, stdout.String())
}

func TestOutcome(t *testing.T) {
	var o outcome
	assert.Equal(t, exitTransport, o.code(), "nothing recorded")

	o.record(exitTransport)
	o.record(exitSerialization)
	assert.Equal(t, exitSerialization, o.code())

	o.record(exitTransport)
	o.record(exitOK)
	assert.Equal(t, exitOK, o.code(), "one full export is enough")
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run(context.Background(), []string{"-format", "xml", "-demo"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run(context.Background(), []string{"-unit", "300"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run(context.Background(), []string{"extra"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &stdout, &stderr))
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telemetry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
telemetry:
  source:
    host: plc.local
    port: 1502
    unit_id: 4
  output:
    format: text
`), 0o644))

	var stderr bytes.Buffer
	cfg, err := loadConfig([]string{"-config", path, "-port", "2502"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "plc.local", cfg.Telemetry.Source.Host, "unset flag keeps file value")
	assert.Equal(t, 2502, cfg.Telemetry.Source.Port)
	assert.Equal(t, uint8(4), cfg.Telemetry.Source.UnitID)
	assert.Equal(t, "text", cfg.Telemetry.Output.Format)
}
