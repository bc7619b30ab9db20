package eventlog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EntryKind classifies a history entry.
type EntryKind int

const (
	KindIcon EntryKind = iota
	KindConstants
	KindSplash
	KindOther
)

var kindNames = map[EntryKind]string{
	KindIcon:      "icon",
	KindConstants: "constants",
	KindSplash:    "splash",
	KindOther:     "other",
}

func (k EntryKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindOther]
}

// ParseKind maps a kind name back to its EntryKind. Unknown names map to
// KindOther.
func ParseKind(s string) EntryKind {
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}
	return KindOther
}

// Entry records one generated file.
type Entry struct {
	Time    time.Time
	Kind    EntryKind
	Density string // icons only
	Size    int    // edge length in pixels, icons only
	Bytes   int
	SHA256  string
	Path    string
}

// FormatLine renders an entry as a single log line:
//
//	2026-10-19T10:00:00Z  kind=icon  density=mipmap-hdpi  size=72  bytes=2214  sha256=…  path="/repo/…"
func FormatLine(e Entry) string {
	var b strings.Builder
	b.WriteString(e.Time.Format(time.RFC3339))
	fmt.Fprintf(&b, "  kind=%s", e.Kind)
	if e.Density != "" {
		fmt.Fprintf(&b, "  density=%s", e.Density)
	}
	if e.Size > 0 {
		fmt.Fprintf(&b, "  size=%d", e.Size)
	}
	fmt.Fprintf(&b, "  bytes=%d  sha256=%s  path=%q", e.Bytes, e.SHA256, e.Path)
	return b.String()
}

// ParseEntries parses log content line by line. Malformed lines are
// silently skipped.
func ParseEntries(content string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ts, ok := ExtractTimestamp(line)
		if !ok || !hasField(line, "kind") {
			continue
		}
		e := Entry{
			Time:    ts,
			Kind:    ParseKind(extractField(line, "kind")),
			Density: extractField(line, "density"),
			SHA256:  extractField(line, "sha256"),
		}
		e.Size, _ = strconv.Atoi(extractField(line, "size"))
		e.Bytes, _ = strconv.Atoi(extractField(line, "bytes"))
		if idx := strings.Index(line, "  path="); idx >= 0 {
			e.Path = extractQuoted(line[idx+len("  path="):])
		}
		entries = append(entries, e)
	}
	return entries
}

// ExtractTimestamp parses the RFC3339 timestamp that starts a log line.
func ExtractTimestamp(line string) (time.Time, bool) {
	tsEnd := strings.Index(line, "  ")
	if tsEnd < 0 {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, line[:tsEnd])
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func extractField(line, key string) string {
	prefix := key + "="
	for _, field := range strings.Fields(line) {
		if strings.HasPrefix(field, prefix) {
			return field[len(prefix):]
		}
	}
	return ""
}

func hasField(line, key string) bool {
	return extractField(line, key) != ""
}

func extractQuoted(s string) string {
	if len(s) == 0 || s[0] != '"' {
		return ""
	}
	// Find closing quote (skip escaped quotes).
	for i := 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++ // skip escaped character
			continue
		}
		if s[i] == '"' {
			text, err := strconv.Unquote(s[:i+1])
			if err != nil {
				return ""
			}
			return text
		}
	}
	return ""
}
