// Package openclaw wraps the openclaw CLI for status queries.
package openclaw

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
)

// DefaultPath is the openclaw binary name resolved via PATH.
const DefaultPath = "openclaw"

// Result holds the outcome of one openclaw invocation.
type Result struct {
	Success  bool   `json:"success"`
	Output   string `json:"output"`
	Error    string `json:"error,omitempty"`
	ExitCode int    `json:"return_code"`
}

// StatusResult is the parsed `openclaw status` output, or the reason it
// could not be obtained. Exactly one of Fields/Err is meaningful.
type StatusResult struct {
	Fields map[string]string
	Err    string
}

// Failed reports whether the status query failed.
func (r StatusResult) Failed() bool { return r.Err != "" }

// MarshalJSON keeps the wire shape flat: the field map on success,
// {"error": ...} on failure.
func (r StatusResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(map[string]string{"error": r.Err})
	}
	if r.Fields == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(r.Fields)
}

// OutputResult is the raw output of a subcommand, or the reason it failed.
type OutputResult struct {
	Output string
	Err    string
}

// Failed reports whether the subcommand failed.
func (r OutputResult) Failed() bool { return r.Err != "" }

// MarshalJSON emits {"output": ...} on success and {"error": ...} on failure.
func (r OutputResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(map[string]string{"error": r.Err})
	}
	return json.Marshal(map[string]string{"output": r.Output})
}

// Client invokes the openclaw CLI.
type Client struct {
	// Path is the binary to invoke, name or absolute path.
	Path string
}

// NewClient creates a client for the given binary path. An empty path
// falls back to DefaultPath.
func NewClient(path string) *Client {
	if path == "" {
		path = DefaultPath
	}
	return &Client{Path: path}
}

// Run invokes the CLI with the given arguments and captures both streams.
// It never returns an error: a process that cannot be started is folded
// into a Result with Success=false, empty output, and exit code 1.
func (c *Client) Run(ctx context.Context, args ...string) Result {
	cmd := exec.CommandContext(ctx, c.Path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	errOut := strings.TrimSpace(stderr.String())

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if errOut == "" {
				errOut = err.Error()
			}
			return Result{
				Success:  false,
				Output:   out,
				Error:    errOut,
				ExitCode: exitErr.ExitCode(),
			}
		}
		// Spawn failure (binary missing, permission denied, ...).
		return Result{
			Success:  false,
			Output:   "",
			Error:    err.Error(),
			ExitCode: 1,
		}
	}

	return Result{
		Success:  true,
		Output:   out,
		Error:    errOut,
		ExitCode: 0,
	}
}

// Status runs `openclaw status` and parses its line-oriented output.
func (c *Client) Status(ctx context.Context) StatusResult {
	res := c.Run(ctx, "status")
	if !res.Success {
		return StatusResult{Err: res.Error}
	}
	return StatusResult{Fields: ParseStatus(res.Output)}
}

// GatewayStatus runs `openclaw gateway status`.
func (c *Client) GatewayStatus(ctx context.Context) OutputResult {
	return c.output(ctx, "gateway", "status")
}

// CronStatus runs `openclaw cron status`.
func (c *Client) CronStatus(ctx context.Context) OutputResult {
	return c.output(ctx, "cron", "status")
}

// Health runs `openclaw health`.
func (c *Client) Health(ctx context.Context) OutputResult {
	return c.output(ctx, "health")
}

// Sessions runs `openclaw sessions list` and returns one entry per
// non-empty output line. A failed invocation yields nil.
func (c *Client) Sessions(ctx context.Context) []string {
	res := c.Run(ctx, "sessions", "list")
	if !res.Success {
		return nil
	}
	var sessions []string
	for _, line := range strings.Split(res.Output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sessions = append(sessions, line)
		}
	}
	return sessions
}

func (c *Client) output(ctx context.Context, args ...string) OutputResult {
	res := c.Run(ctx, args...)
	if !res.Success {
		return OutputResult{Err: res.Error}
	}
	return OutputResult{Output: res.Output}
}
