// Package health aggregates platform, service, and resource checks into
// a single snapshot.
package health

import (
	"github.com/rembot/clawhealth/internal/metrics"
	"github.com/rembot/clawhealth/internal/openclaw"
	"github.com/rembot/clawhealth/internal/probe"
)

// Snapshot is the aggregated health record of one check run. Every
// section stands on its own: a failed probe leaves an error-shaped
// section behind without affecting the others.
type Snapshot struct {
	OpenClaw   openclaw.StatusResult `json:"openclaw_status"`
	Gateway    openclaw.OutputResult `json:"gateway"`
	Cron       openclaw.OutputResult `json:"cron"`
	GitServers probe.Results         `json:"git_servers"`
	Disk       metrics.DiskSample    `json:"disk"`
	Memory     metrics.MemorySample  `json:"memory"`
	Timestamp  string                `json:"timestamp"`
}
