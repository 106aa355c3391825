// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"fmt"
)

type logFormatter interface {
	formatterName() string
	// formatEntry renders a logEntry, terminated by a newline.
	formatEntry(entry logEntry, redactable bool, cp *colorProfile) []byte
}

var formatters = func() map[string]logFormatter {
	m := make(map[string]logFormatter)
	r := func(f logFormatter) {
		m[f.formatterName()] = f
	}
	r(formatCrdbV1{})
	r(formatCrdbV1TTY{})
	return m
}()

func formatterFor(cp *colorProfile) logFormatter {
	if cp != nil && !noColor {
		return formatters["crdb-v1-tty"]
	}
	return formatters["crdb-v1"]
}

type formatCrdbV1 struct{}

func (formatCrdbV1) formatterName() string { return "crdb-v1" }

func (formatCrdbV1) formatEntry(entry logEntry, redactable bool, _ *colorProfile) []byte {
	return formatLogEntryInternal(entry, redactable, nil)
}

type formatCrdbV1TTY struct{}

func (formatCrdbV1TTY) formatterName() string { return "crdb-v1-tty" }

func (formatCrdbV1TTY) formatEntry(entry logEntry, redactable bool, cp *colorProfile) []byte {
	return formatLogEntryInternal(entry, redactable, cp)
}

// formatLogEntryInternal renders an entry as
//
//	Lyymmdd hh:mm:ss.uuuuuu file:line [tags] message
//
// where L is the severity letter. Entries without tags show [-].
func formatLogEntryInternal(entry logEntry, redactable bool, cp *colorProfile) []byte {
	var buf bytes.Buffer
	if cp != nil {
		buf.Write(cp.prefixFor(entry.sev))
	}
	buf.WriteByte(entry.sev.char())
	if cp != nil {
		buf.Write(colorReset)
		buf.Write(cp.timePrefix)
	}
	buf.WriteString(entry.time.Format("060102 15:04:05.000000"))
	if cp != nil {
		buf.Write(colorReset)
	}
	fmt.Fprintf(&buf, " %s:%d ", entry.file, entry.line)
	if entry.tags == "" {
		buf.WriteString("[-] ")
	} else {
		buf.WriteByte('[')
		buf.WriteString(entry.tags)
		buf.WriteString("] ")
	}
	if redactable {
		buf.WriteString(string(entry.msg))
	} else {
		buf.WriteString(entry.msg.StripMarkers())
	}
	if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
