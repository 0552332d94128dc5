// Package probe checks TCP reachability of local services.
package probe

import (
	"encoding/json"
	"net"
	"strconv"
	"time"
)

// DefaultTimeout bounds each connection attempt.
const DefaultTimeout = 2 * time.Second

// Target is one named service checked by TCP connect on loopback.
type Target struct {
	Name      string
	Port      int
	Reachable bool
}

// Results holds probe outcomes in probe order.
type Results []Target

// MarshalJSON emits a name-keyed object, e.g.
// {"forgejo": {"port": 3001, "status": false}, ...}.
func (rs Results) MarshalJSON() ([]byte, error) {
	type entry struct {
		Port   int  `json:"port"`
		Status bool `json:"status"`
	}
	m := make(map[string]entry, len(rs))
	for _, t := range rs {
		m[t.Name] = entry{Port: t.Port, Status: t.Reachable}
	}
	return json.Marshal(m)
}

// Find returns the target with the given name, if present.
func (rs Results) Find(name string) (Target, bool) {
	for _, t := range rs {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// Check attempts a TCP connection to each target on localhost, one at a
// time. Any dial error, timeouts included, leaves the target unreachable.
func Check(targets []Target, timeout time.Duration) Results {
	results := make(Results, 0, len(targets))
	for _, t := range targets {
		addr := net.JoinHostPort("localhost", strconv.Itoa(t.Port))
		conn, err := net.DialTimeout("tcp", addr, timeout)
		if err == nil {
			t.Reachable = true
			conn.Close()
		}
		results = append(results, t)
	}
	return results
}
