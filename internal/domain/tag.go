package domain

import "regexp"

const MessageTagConstraints = "Tags names should be alphanumeric"

var tagPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Tag is a short label attached to a client
type Tag struct {
	name string
}

// NewTag creates a Tag from a valid tag name
func NewTag(name string) (Tag, error) {
	if !IsValidTagName(name) {
		return Tag{}, invalidArgument(MessageTagConstraints)
	}
	return Tag{name: name}, nil
}

// IsValidTagName returns true if s is a valid tag name
func IsValidTagName(s string) bool {
	return tagPattern.MatchString(s)
}

// String renders the tag the way lists show it, e.g. "[friend]"
func (t Tag) String() string {
	return "[" + t.name + "]"
}

// Name returns the bare tag name
func (t Tag) Name() string {
	return t.name
}

func (t Tag) Equals(other Tag) bool {
	return t.name == other.name
}

// UniqueTags drops repeated tags, keeping the first occurrence of each
func UniqueTags(tags []Tag) []Tag {
	seen := make(map[Tag]struct{}, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
