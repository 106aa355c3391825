// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

// Severity is the severity level of a log entry.
type Severity int32

// Severity levels, in increasing order.
const (
	Severity_UNKNOWN Severity = iota
	Severity_INFO
	Severity_WARNING
	Severity_ERROR
	Severity_FATAL
)

var severityNames = [...]string{"UNKNOWN", "INFO", "WARNING", "ERROR", "FATAL"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return severityNames[0]
	}
	return severityNames[s]
}

// char is the one-letter prefix of entries at this severity.
func (s Severity) char() byte {
	if s < 0 || int(s) >= len(severityNames) {
		return '?'
	}
	return "?IWEF"[s]
}
