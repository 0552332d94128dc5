package health

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rembot/clawhealth/internal/config"
	"github.com/rembot/clawhealth/internal/openclaw"
	"github.com/rembot/clawhealth/internal/probe"
)

func fakeCLI(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openclaw")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func closedPort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}

func testChecker(t *testing.T, script string) *Checker {
	t.Helper()
	return &Checker{
		Client: openclaw.NewClient(fakeCLI(t, script)),
		Targets: []probe.Target{
			{Name: "forgejo", Port: closedPort(t)},
			{Name: "gitea", Port: closedPort(t)},
		},
		DiskPath: "/",
	}
}

func TestNewFromConfig(t *testing.T) {
	c := New(config.Default())

	assert.Equal(t, "openclaw", c.Client.Path)
	assert.Equal(t, "/", c.DiskPath)
	require.Len(t, c.Targets, 2)
	assert.Equal(t, probe.Target{Name: "forgejo", Port: 3001}, c.Targets[0])
	assert.Nil(t, c.Progress)
}

func TestRunPopulatesAllSections(t *testing.T) {
	c := testChecker(t, `echo "Status: running"`)

	snap, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "running", snap.OpenClaw.Fields["Status"])
	assert.False(t, snap.Gateway.Failed())
	assert.False(t, snap.Cron.Failed())
	assert.Len(t, snap.GitServers, 2)
	assert.Greater(t, snap.Disk.TotalGB, 0.0)
	assert.Greater(t, snap.Memory.TotalGB, 0.0)

	ts, err := time.Parse(time.RFC3339, snap.Timestamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestRunToolFailureDoesNotShortCircuit(t *testing.T) {
	c := testChecker(t, `echo "daemon down" >&2; exit 1`)

	snap, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.OpenClaw.Failed())
	assert.True(t, snap.Gateway.Failed())
	assert.True(t, snap.Cron.Failed())
	// Later steps still ran.
	assert.Len(t, snap.GitServers, 2)
	assert.Greater(t, snap.Disk.TotalGB, 0.0)
	assert.Greater(t, snap.Memory.TotalGB, 0.0)
	assert.NotEmpty(t, snap.Timestamp)
}

func TestRunDiskFailureAborts(t *testing.T) {
	c := testChecker(t, `echo ok`)
	c.DiskPath = "/definitely/not/a/mountpoint"

	_, err := c.Run(context.Background())
	assert.Error(t, err)
}

func TestRunProgressLines(t *testing.T) {
	c := testChecker(t, `echo ok`)
	var buf bytes.Buffer
	c.Progress = &buf

	_, err := c.Run(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Running system health checks...", lines[0])
	assert.Equal(t, "1. Checking OpenClaw status...", lines[1])
	assert.Equal(t, "6. Checking memory...", lines[6])
}

func TestRunProgressSuppressedByDefault(t *testing.T) {
	c := testChecker(t, `echo ok`)

	// Progress is nil; Run must not panic and emits nothing through it.
	_, err := c.Run(context.Background())
	require.NoError(t, err)
}
