package health

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rembot/clawhealth/internal/config"
	"github.com/rembot/clawhealth/internal/metrics"
	"github.com/rembot/clawhealth/internal/openclaw"
	"github.com/rembot/clawhealth/internal/probe"
)

// Checker runs the full health check: platform status, gateway, cron,
// git service probes, then disk and memory.
type Checker struct {
	Client   *openclaw.Client
	Targets  []probe.Target
	DiskPath string
	// Progress receives the numbered step lines. Nil suppresses them.
	Progress io.Writer
}

// New builds a Checker from configuration.
func New(cfg *config.Config) *Checker {
	targets := make([]probe.Target, 0, len(cfg.GitServers))
	for _, s := range cfg.GitServers {
		targets = append(targets, probe.Target{Name: s.Name, Port: s.Port})
	}
	return &Checker{
		Client:   openclaw.NewClient(cfg.OpenClawPath),
		Targets:  targets,
		DiskPath: cfg.DiskPath,
	}
}

// Run performs all checks sequentially in fixed order. Tool and probe
// failures are folded into their sections; only a resource sampling
// failure aborts the run. The timestamp is appended last, in UTC.
func (c *Checker) Run(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}

	c.progress("Running system health checks...")

	c.step(1, "Checking OpenClaw status...")
	snap.OpenClaw = c.Client.Status(ctx)

	c.step(2, "Checking gateway...")
	snap.Gateway = c.Client.GatewayStatus(ctx)

	c.step(3, "Checking cron jobs...")
	snap.Cron = c.Client.CronStatus(ctx)

	c.step(4, "Checking Git servers...")
	snap.GitServers = probe.Check(c.Targets, probe.DefaultTimeout)

	c.step(5, "Checking disk space...")
	diskSample, err := metrics.SampleDisk(c.DiskPath)
	if err != nil {
		return nil, err
	}
	snap.Disk = diskSample

	c.step(6, "Checking memory...")
	memSample, err := metrics.SampleMemory()
	if err != nil {
		return nil, err
	}
	snap.Memory = memSample

	snap.Timestamp = time.Now().UTC().Format(time.RFC3339)
	return snap, nil
}

func (c *Checker) step(n int, msg string) {
	c.progress(fmt.Sprintf("%d. %s", n, msg))
}

func (c *Checker) progress(line string) {
	if c.Progress != nil {
		fmt.Fprintln(c.Progress, line)
	}
}
