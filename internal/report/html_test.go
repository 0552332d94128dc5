package report

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rembot/clawhealth/internal/health"
	"github.com/rembot/clawhealth/internal/openclaw"
)

func TestHTMLFullSnapshot(t *testing.T) {
	out, err := HTML(fullSnapshot())
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "RemBot Infrastructure Health")
	assert.Contains(t, out, "Generated: 2026-08-29T10:00:00Z")
	assert.Contains(t, out, ">running<")
	assert.Contains(t, out, "gateway running on :9000")
	assert.Contains(t, out, ">Online<")
	assert.Contains(t, out, ">Offline<")
	assert.Contains(t, out, "42.5%")
	assert.Contains(t, out, "42.5 GB / 100 GB")
	assert.Contains(t, out, "<td>Forgejo</td><td>3001</td><td>Online</td>")
	assert.Contains(t, out, "<td>Gitea</td><td>3000</td><td>Offline</td>")
}

func TestHTMLMissingGatewayShowsUnknown(t *testing.T) {
	snap := fullSnapshot()
	snap.Gateway = openclaw.OutputResult{}

	out, err := HTML(snap)
	require.NoError(t, err)
	assert.Contains(t, out, ">Unknown<")
}

func TestHTMLEmptySnapshot(t *testing.T) {
	out, err := HTML(&health.Snapshot{})
	require.NoError(t, err)

	assert.Contains(t, out, "Generated: N/A")
	assert.Contains(t, out, ">Unknown<")
	assert.Contains(t, out, "N/A%")
}

func TestHTMLIsSelfContained(t *testing.T) {
	out, err := HTML(fullSnapshot())
	require.NoError(t, err)

	assert.NotContains(t, out, "http://")
	assert.NotContains(t, out, "https://")
	assert.NotContains(t, out, "<script")
	assert.Contains(t, out, "<style>")
}

func TestHTMLEscapesToolOutput(t *testing.T) {
	snap := fullSnapshot()
	snap.Gateway = openclaw.OutputResult{Output: `<script>alert("x")</script>`}

	out, err := HTML(snap)
	require.NoError(t, err)

	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestPageRendersViaComponent(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Page(fullSnapshot()).Render(context.Background(), &b))
	assert.Contains(t, b.String(), "RemBot Infrastructure Health")
}
