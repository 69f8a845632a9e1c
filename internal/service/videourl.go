package service

import (
	"net/url"
	"strings"
)

const embedURLTemplate = "https://www.youtube.com/embed/"

// NormalizeVideoURL rewrites an arbitrary video link into the
// canonical embeddable form. It runs on every lesson save, re-deriving
// from whatever the current value is, and is idempotent: a canonical
// embed URL extracts its own id via the embed-path branch and maps
// back to itself.
//
// Empty input clears the stored value. The trailing fallback keeps the
// last path segment of unrecognized URLs, which can mis-extract ids
// for other platforms; that lossiness is accepted, known behavior.
func NormalizeVideoURL(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id := extractVideoID(raw)
	if id == "" {
		return &raw
	}
	canonical := embedURLTemplate + id
	return &canonical
}

func extractVideoID(raw string) string {
	// Short links carry the id as their only path segment.
	if strings.Contains(raw, "youtu.be") {
		return stripQuery(lastSegment(raw))
	}

	if parsed, err := url.Parse(raw); err == nil {
		if v := parsed.Query().Get("v"); v != "" {
			return v
		}
	}

	if strings.Contains(raw, "embed") {
		return stripQuery(lastSegment(raw))
	}

	return stripQuery(lastSegment(raw))
}

func lastSegment(s string) string {
	if idx := strings.LastIndex(s, "/"); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

func stripQuery(s string) string {
	if idx := strings.Index(s, "?"); idx >= 0 {
		return s[:idx]
	}
	return s
}
