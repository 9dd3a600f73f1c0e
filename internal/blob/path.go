package blob

import (
	"fmt"
	"regexp"
	"time"
)

// AnonOwner is used in object keys when no authenticated owner exists.
const AnonOwner = "anon"

var (
	whitespace   = regexp.MustCompile(`\s+`)
	unsafeChars  = regexp.MustCompile(`[^\w.-]`)
	nowUnixMilli = func() int64 { return time.Now().UnixMilli() }
)

// SanitizeFilename collapses whitespace runs to underscores and drops every
// character outside [A-Za-z0-9_.-].
func SanitizeFilename(name string) string {
	s := whitespace.ReplaceAllString(name, "_")
	s = unsafeChars.ReplaceAllString(s, "")
	if s == "" {
		s = "file"
	}
	return s
}

// ObjectKey builds the storage key for an owner's upload:
// people/{ownerIdOrAnon}/{unixMillis}_{sanitizedOriginalFilename}.
// The millisecond prefix keeps concurrent uploads of the same file apart.
func ObjectKey(owner, filename string) string {
	if owner == "" {
		owner = AnonOwner
	}
	return fmt.Sprintf("people/%s/%d_%s", owner, nowUnixMilli(), SanitizeFilename(filename))
}
