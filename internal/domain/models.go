package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

// Source tells where the latest snapshot came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
	SourceNone   Source = "none"
)

// MissingCPU is the upstream sentinel for "cpu data unavailable".
// The feed emits it either as a bare number or as a quoted string.
const MissingCPU = 4040404

// CPUValue decodes the feed's cpuUsage field, which is a number except
// when the collector had no data, in which case it is the sentinel
// (sometimes stringified). Unparseable values count as missing too.
type CPUValue struct {
	Value   float64
	Missing bool
}

func (c *CPUValue) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if string(b) == "null" {
		c.Missing = true
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil || v == MissingCPU {
		c.Missing = true
		return nil
	}
	c.Value = v
	return nil
}

func (c CPUValue) MarshalJSON() ([]byte, error) {
	if c.Missing {
		return []byte(strconv.Itoa(MissingCPU)), nil
	}
	return []byte(strconv.FormatFloat(c.Value, 'f', -1, 64)), nil
}

// Entity is one pod or node in a snapshot.
type Entity struct {
	Name        string   `json:"name"`
	Namespace   string   `json:"namespace,omitempty"`
	CPUUsage    CPUValue `json:"cpuUsage"`
	MemoryUsage float64  `json:"memoryUsage"`
}

// Snapshot is one poll of the metrics feed. It is replaced wholesale by
// the next poll; two snapshots with the same Timestamp are the same data.
type Snapshot struct {
	Timestamp string   `json:"timestamp"`
	Pods      []Entity `json:"pods"`
	Nodes     []Entity `json:"nodes"`

	Source Source `json:"-"`
}

// StatusLine renders the "last updated" footer text.
func (s Snapshot) StatusLine() string {
	ts := s.Timestamp
	if ts == "" {
		ts = "never"
	}
	src := s.Source
	if src == "" {
		src = SourceNone
	}
	return fmt.Sprintf("%s (%s)", ts, src)
}
