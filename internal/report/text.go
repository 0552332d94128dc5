package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/rembot/clawhealth/internal/health"
)

// Text renders the snapshot as a four-section plain-text report. Missing
// or failed sections fall back to UNKNOWN/ERROR/N-A placeholders.
func Text(s *health.Snapshot) string {
	lines := []string{"=== System Health Report ==="}
	lines = append(lines, "Generated: "+orNA(s.Timestamp), "")

	// OpenClaw platform
	lines = append(lines, "1. OpenClaw System")
	switch {
	case s.OpenClaw.Failed():
		lines = append(lines, "   Status: ERROR - "+s.OpenClaw.Err)
	case len(s.OpenClaw.Fields) > 0:
		lines = append(lines, "   Status: OPERATIONAL")
		keys := make([]string, 0, len(s.OpenClaw.Fields))
		for k := range s.OpenClaw.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("   %s: %s", k, s.OpenClaw.Fields[k]))
		}
	default:
		lines = append(lines, "   Status: UNKNOWN")
	}

	// Gateway
	lines = append(lines, "", "2. Gateway")
	switch {
	case s.Gateway.Failed():
		lines = append(lines, "   Status: ERROR - "+s.Gateway.Err)
	case strings.Contains(strings.ToLower(s.Gateway.Output), "running"):
		lines = append(lines, "   Status: RUNNING")
	case s.Gateway.Output != "":
		lines = append(lines, "   Status: "+s.Gateway.Output)
	default:
		lines = append(lines, "   Status: UNKNOWN")
	}

	// Git servers
	lines = append(lines, "", "3. Git Servers")
	for _, t := range s.GitServers {
		label := "✗ OFFLINE"
		if t.Reachable {
			label = "✓ ONLINE"
		}
		lines = append(lines, fmt.Sprintf("   %s (port %d): %s", capitalize(t.Name), t.Port, label))
	}

	// Resources
	lines = append(lines, "", "4. System Resources")
	if s.Disk.TotalGB > 0 {
		lines = append(lines,
			"   Disk Usage: "+fmtFloat(s.Disk.PercentUsed)+"%",
			"   Free Space: "+fmtFloat(s.Disk.FreeGB)+" GB")
	} else {
		lines = append(lines, "   Disk Usage: N/A", "   Free Space: N/A")
	}
	if s.Memory.TotalGB > 0 {
		lines = append(lines,
			"   Memory Usage: "+fmtFloat(s.Memory.PercentUsed)+"%",
			"   Available Memory: "+fmtFloat(s.Memory.AvailableGB)+" GB")
	} else {
		lines = append(lines, "   Memory Usage: N/A", "   Available Memory: N/A")
	}

	return strings.Join(lines, "\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
