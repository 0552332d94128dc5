package report

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/rembot/clawhealth/internal/health"
)

// Inline stylesheet keeps the page self-contained, no external fetches.
const pageStyle = `
    body { font-family: 'Inter', system-ui, -apple-system, sans-serif; margin: 2rem; background: #0f172a; color: #e2e8f0; }
    h1 { font-size: 1.75rem; margin-bottom: 0.5rem; }
    .timestamp { color: #94a3b8; margin-bottom: 1.5rem; }
    section { margin-bottom: 2rem; padding: 1.5rem; background: #1e293b; border-radius: 1rem; box-shadow: 0 8px 20px rgba(15,23,42,0.6); }
    table { width: 100%; border-collapse: collapse; margin-top: 1rem; }
    th, td { padding: 0.75rem 1rem; border-bottom: 1px solid #334155; text-align: left; }
    th { color: #94a3b8; text-transform: uppercase; font-size: 0.75rem; letter-spacing: 0.08em; }
    .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 1rem; margin-top: 1rem; }
    .card { background: #0f172a; padding: 1rem; border-radius: 0.75rem; border: 1px solid #1f2937; }
    .value { font-size: 1.5rem; font-weight: 600; }
    .label { color: #94a3b8; text-transform: uppercase; letter-spacing: 0.08em; font-size: 0.7rem; }
`

// Page builds the dashboard as a templ component, renderable straight
// into an HTTP response.
func Page(s *health.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderPage(w, s)
	})
}

// HTML renders the snapshot as a single self-contained page.
func HTML(s *health.Snapshot) (string, error) {
	var b strings.Builder
	if err := Page(s).Render(context.Background(), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderPage(w io.Writer, s *health.Snapshot) error {
	openclawStatus := "Unknown"
	if !s.OpenClaw.Failed() {
		if v, ok := s.OpenClaw.Fields["Status"]; ok && v != "" {
			openclawStatus = v
		}
	}

	gatewayStatus := "Unknown"
	if !s.Gateway.Failed() && s.Gateway.Output != "" {
		gatewayStatus = s.Gateway.Output
	}

	timestamp := s.Timestamp
	if timestamp == "" {
		timestamp = "N/A"
	}

	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>RemBot Health Report</title>
  <style>%s  </style>
</head>
<body>
  <h1>RemBot Infrastructure Health</h1>
  <div class="timestamp">Generated: %s</div>
`, pageStyle, html.EscapeString(timestamp))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, `  <section>
    <h2>Platform Status</h2>
    <div class="grid">`)
	writeCard(w, "OpenClaw", openclawStatus, "")
	writeCard(w, "Gateway", gatewayStatus, "")
	writeCard(w, "Forgejo", serviceStatus(s, "forgejo"), "")
	writeCard(w, "Gitea", serviceStatus(s, "gitea"), "")
	fmt.Fprintln(w, `    </div>
  </section>`)

	diskPct, diskDetail := "N/A", "N/A GB / N/A GB"
	if s.Disk.TotalGB > 0 {
		diskPct = fmtFloat(s.Disk.PercentUsed)
		diskDetail = fmtFloat(s.Disk.UsedGB) + " GB / " + fmtFloat(s.Disk.TotalGB) + " GB"
	}
	memPct, memDetail := "N/A", "N/A GB / N/A GB"
	if s.Memory.TotalGB > 0 {
		memPct = fmtFloat(s.Memory.PercentUsed)
		memDetail = fmtFloat(s.Memory.UsedGB) + " GB / " + fmtFloat(s.Memory.TotalGB) + " GB"
	}

	fmt.Fprintln(w, `  <section>
    <h2>Resource Utilization</h2>
    <div class="grid">`)
	writeCard(w, "Disk Usage", diskPct+"%", diskDetail)
	writeCard(w, "Memory Usage", memPct+"%", memDetail)
	fmt.Fprintln(w, `    </div>
  </section>`)

	fmt.Fprintln(w, `  <section>
    <h2>Git Services</h2>
    <table>
      <thead>
        <tr><th>Service</th><th>Port</th><th>Status</th></tr>
      </thead>
      <tbody>`)
	for _, t := range s.GitServers {
		status := "Offline"
		if t.Reachable {
			status = "Online"
		}
		fmt.Fprintf(w, "        <tr><td>%s</td><td>%d</td><td>%s</td></tr>\n",
			html.EscapeString(capitalize(t.Name)), t.Port, status)
	}
	_, err = fmt.Fprintln(w, `      </tbody>
    </table>
  </section>
</body>
</html>`)
	return err
}

func writeCard(w io.Writer, label, value, detail string) {
	fmt.Fprintf(w, `      <div class="card">
        <div class="label">%s</div>
        <div class="value">%s</div>
`, html.EscapeString(label), html.EscapeString(value))
	if detail != "" {
		fmt.Fprintf(w, "        <div>%s</div>\n", html.EscapeString(detail))
	}
	fmt.Fprintln(w, "      </div>")
}

func serviceStatus(s *health.Snapshot, name string) string {
	t, ok := s.GitServers.Find(name)
	if !ok {
		return "Unknown"
	}
	if t.Reachable {
		return "Online"
	}
	return "Offline"
}
