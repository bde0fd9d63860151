package pagination

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Cursor is the opaque pagination state we encode/decode.
// Key + CreatedUnix (in millis) establish a stable cursor over
// (created_at DESC, key DESC) orderings.
type Cursor struct {
	Key         string `json:"k"`
	CreatedUnix int64  `json:"t,omitempty"`
}

// IsZero reports whether c points at the first page.
func (c Cursor) IsZero() bool {
	return c.Key == "" && c.CreatedUnix == 0
}

// Time returns the cursor timestamp in UTC.
func (c Cursor) Time() time.Time {
	return time.UnixMilli(c.CreatedUnix).UTC()
}

// After builds the cursor pointing past a row.
func After(key string, created time.Time) Cursor {
	return Cursor{Key: key, CreatedUnix: created.UnixMilli()}
}

// Encode converts a Cursor into a Base64 string.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a Base64 string into a Cursor.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token")
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token")
	}
	return c, nil
}

// ClampLimit applies DefaultLimit to non-positive values and caps at MaxLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// Deref safely dereferences a string pointer for pagination tokens.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
