// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"strings"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// FormatWithContextTags formats the string and prepends the context
// tags.
//
// Redaction markers are *not* inserted. The resulting
// string is generally unsafe for reporting.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var buf strings.Builder
	if formatTags(ctx, true /* brackets */, &buf) {
		buf.WriteByte(' ')
	}
	buf.WriteString(renderArgs(format, args).StripMarkers())
	return buf.String()
}

// formatTags appends the tags of ctx to buf and returns false if there were
// none.
func formatTags(ctx context.Context, brackets bool, buf *strings.Builder) bool {
	tags := logtags.FromContext(ctx)
	if tags == nil || len(tags.Get()) == 0 {
		return false
	}
	if brackets {
		buf.WriteByte('[')
	}
	tags.FormatToString(buf)
	if brackets {
		buf.WriteByte(']')
	}
	return true
}

func formatTagsToString(ctx context.Context) string {
	var buf strings.Builder
	formatTags(ctx, false /* brackets */, &buf)
	return buf.String()
}

// renderArgs renders the arguments with redaction markers around values that
// are not safe. An empty format prints the arguments like fmt.Print.
func renderArgs(format string, args []interface{}) redact.RedactableString {
	if format == "" {
		return redact.Sprint(args...)
	}
	return redact.Sprintf(format, args...)
}
