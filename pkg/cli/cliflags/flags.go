// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cliflags holds the names, environment variables and help texts of
// the flags of the stl command.
package cliflags

import "strings"

// FlagInfo contains the static information for a CLI flag and helper
// to format the description.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// value can be controlled (optional).
	EnvVar string

	// Description of the flag.
	//
	// The text will be automatically re-wrapped. The wrapping can be stopped
	// by embedding the tag "<PRE>": this tag is removed from the text and
	// signals that everything that follows should not be re-wrapped.
	Description string
}

const usageIndentation = 8
const wrapWidth = 79 - usageIndentation

// wrapDescription wraps the text in a FlagInfo.Description.
func wrapDescription(s string) string {
	var result strings.Builder

	// split returns the parts of the string before and after the first occurrence
	// of the tag.
	split := func(str, tag string) (before, after string) {
		pieces := strings.SplitN(str, tag, 2)
		switch len(pieces) {
		case 0:
			return "", ""
		case 1:
			return pieces[0], ""
		default:
			return pieces[0], pieces[1]
		}
	}

	for len(s) > 0 {
		var toWrap, dontWrap string
		// Wrap everything up to the next stop wrap tag.
		toWrap, s = split(s, "<PRE>")
		result.WriteString(wrapText(toWrap))
		// Copy everything up to the next start wrap tag.
		dontWrap, s = split(s, "</PRE>")
		result.WriteString(dontWrap)
	}
	return result.String()
}

// wrapText re-flows the paragraphs of s to wrapWidth columns.
func wrapText(s string) string {
	var out strings.Builder
	paragraphs := strings.Split(s, "\n\n")
	for i, p := range paragraphs {
		if i > 0 {
			out.WriteString("\n\n")
		}
		col := 0
		for j, word := range strings.Fields(p) {
			if j > 0 {
				if col+1+len(word) > wrapWidth {
					out.WriteByte('\n')
					col = 0
				} else {
					out.WriteByte(' ')
					col++
				}
			}
			out.WriteString(word)
			col += len(word)
		}
	}
	return out.String()
}

// Usage returns a formatted usage string for the flag, including:
// * line wrapping
// * indentation
// * env variable name (if set)
func (f FlagInfo) Usage() string {
	s := "\n" + wrapDescription(strings.TrimSpace(f.Description))
	if f.EnvVar != "" {
		s = s + "\nEnvironment variable: " + f.EnvVar
	}
	// github.com/spf13/pflag appends the default value after the usage text. Add
	// the correct indentation (7 spaces) here. This is admittedly fragile.
	return text(s) + "\n"
}

// text indents every line of s by usageIndentation spaces.
func text(s string) string {
	return strings.Replace(s, "\n", "\n"+strings.Repeat(" ", usageIndentation-1), -1)
}
