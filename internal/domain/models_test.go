package domain

import (
	"encoding/json"
	"testing"
)

func TestCPUValueUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		missing bool
	}{
		{"number", `80`, 80, false},
		{"float", `0.45`, 0.45, false},
		{"sentinel number", `4040404`, 0, true},
		{"sentinel string", `"4040404"`, 0, true},
		{"quoted number", `"120"`, 120, false},
		{"null", `null`, 0, true},
		{"garbage", `"n/a"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c CPUValue
			if err := json.Unmarshal([]byte(tt.raw), &c); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.raw, err)
			}
			if c.Missing != tt.missing {
				t.Errorf("Missing = %v, want %v", c.Missing, tt.missing)
			}
			if !tt.missing && c.Value != tt.want {
				t.Errorf("Value = %v, want %v", c.Value, tt.want)
			}
		})
	}
}

func TestSnapshotDecode(t *testing.T) {
	raw := `{"timestamp":"2026-01-02T03:04:05Z","pods":[{"name":"a","namespace":"ns","cpuUsage":"4040404","memoryUsage":500}],"nodes":[]}`
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatal(err)
	}
	if len(s.Pods) != 1 || !s.Pods[0].CPUUsage.Missing {
		t.Errorf("sentinel pod decoded wrong: %+v", s.Pods)
	}
	if s.Pods[0].MemoryUsage != 500 {
		t.Errorf("memoryUsage = %v", s.Pods[0].MemoryUsage)
	}
}

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want string
	}{
		{"remote", Snapshot{Timestamp: "t1", Source: SourceRemote}, "t1 (remote)"},
		{"local", Snapshot{Timestamp: "t2", Source: SourceLocal}, "t2 (local)"},
		{"empty", Snapshot{}, "never (none)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.StatusLine(); got != tt.want {
				t.Errorf("StatusLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
