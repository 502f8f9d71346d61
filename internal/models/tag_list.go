package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// TagList is an ordered list of tags stored as a single comma-joined
// column. The split/join lives here so the rest of the code only ever
// sees []string.
type TagList []string

// ParseTags normalizes raw comma-separated input: each tag is trimmed
// and empty tags are discarded.
func ParseTags(raw string) TagList {
	parts := strings.Split(raw, ",")
	tags := make(TagList, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// String returns the canonical comma-joined form.
func (t TagList) String() string {
	return strings.Join(t, ", ")
}

// Value implements driver.Valuer.
func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "", nil
	}
	return strings.Join(t, ","), nil
}

// Scan implements sql.Scanner.
func (t *TagList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case string:
		*t = ParseTags(v)
		return nil
	case []byte:
		*t = ParseTags(string(v))
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}
}
