// Package pathtemplate parses localized route paths such as "hallo/{username}"
// into an ordered list of segments and renders them with parameter values.
//
// A segment is either literal text, a required placeholder "{name}" or an
// optional placeholder "{name?}". Only a segment that consists entirely of a
// placeholder is treated as one; "{a}-{b}" stays literal, so similarly named
// parameters never collide.
package pathtemplate

import (
	"net/url"
	"strings"
)

// Segment is a single path segment of a template.
type Segment struct {
	// Value is the literal text, or the parameter name for placeholders.
	Value    string
	Param    bool
	Optional bool
}

// Template is a parsed path template. The zero value renders to an empty path.
type Template struct {
	raw      string
	segments []Segment
	leading  bool
	trailing bool
}

// Parse splits raw into segments. Empty segments are dropped; leading and
// trailing slashes are remembered and reproduced on render.
func Parse(raw string) Template {
	t := Template{
		raw:     raw,
		leading: strings.HasPrefix(raw, "/"),
	}

	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return t
	}
	t.trailing = strings.HasSuffix(raw, "/")

	for part := range strings.SplitSeq(trimmed, "/") {
		if part == "" {
			continue
		}
		t.segments = append(t.segments, parseSegment(part))
	}

	return t
}

func parseSegment(part string) Segment {
	if len(part) < 3 || part[0] != '{' || part[len(part)-1] != '}' {
		return Segment{Value: part}
	}

	name := part[1 : len(part)-1]
	optional := strings.HasSuffix(name, "?")
	name = strings.TrimSuffix(name, "?")

	if name == "" || strings.ContainsAny(name, "{}/?") {
		return Segment{Value: part}
	}

	return Segment{Value: name, Param: true, Optional: optional}
}

// String returns the template as it was parsed.
func (t Template) String() string {
	return t.raw
}

// Segments returns a copy of the parsed segments.
func (t Template) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Params returns the placeholder names in order of appearance.
func (t Template) Params() []string {
	var names []string
	for _, s := range t.segments {
		if s.Param {
			names = append(names, s.Value)
		}
	}
	return names
}

// Render substitutes placeholders with path-escaped values from params.
//
// An empty value counts as missing. Optional segments without a value are
// removed; required placeholders without a value are left as "{name}".
func (t Template) Render(params map[string]string) string {
	parts := make([]string, 0, len(t.segments))
	for _, s := range t.segments {
		if !s.Param {
			parts = append(parts, s.Value)
			continue
		}

		if v := params[s.Value]; v != "" {
			parts = append(parts, url.PathEscape(v))
			continue
		}

		if !s.Optional {
			parts = append(parts, "{"+s.Value+"}")
		}
	}

	return t.join(parts)
}

// Patterns returns chi route patterns matching the template. Every optional
// segment doubles the number of patterns: one variant with the parameter and
// one without it. The variant with all segments comes first.
func (t Template) Patterns() []string {
	variants := [][]string{{}}
	for _, s := range t.segments {
		part := s.Value
		if s.Param {
			part = "{" + s.Value + "}"
		}

		next := make([][]string, 0, len(variants)*2)
		for _, v := range variants {
			next = append(next, append(append([]string(nil), v...), part))
		}
		if s.Optional {
			for _, v := range variants {
				next = append(next, append([]string(nil), v...))
			}
		}
		variants = next
	}

	seen := make(map[string]struct{}, len(variants))
	patterns := make([]string, 0, len(variants))
	for _, v := range variants {
		p := "/" + strings.Join(v, "/")
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		patterns = append(patterns, p)
	}

	return patterns
}

// Shape returns pattern with every placeholder name erased, so "/users/{id}"
// and "/users/{name}" share the shape "/users/{}". chi routes patterns of the
// same shape to the same handler.
func Shape(pattern string) string {
	t := Parse(pattern)
	parts := make([]string, 0, len(t.segments))
	for _, s := range t.segments {
		if s.Param {
			parts = append(parts, "{}")
			continue
		}
		parts = append(parts, s.Value)
	}
	return "/" + strings.Join(parts, "/")
}

// Matches reports whether path is one of the patterns produced by Patterns,
// ignoring leading and trailing slashes.
func (t Template) Matches(path string) bool {
	path = "/" + strings.Trim(path, "/")
	for _, p := range t.Patterns() {
		if p == path {
			return true
		}
	}
	return false
}

func (t Template) join(parts []string) string {
	path := strings.Join(parts, "/")
	if t.trailing && path != "" {
		path += "/"
	}
	if t.leading {
		path = "/" + path
	}
	return path
}
