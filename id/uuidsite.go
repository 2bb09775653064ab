package id

import (
	"bytes"

	"github.com/google/uuid"
)

// UUIDSite adapts a uuid.UUID into a Site, ordering sites the same way the
// source orders entries in its sitemap: lexicographically by raw bytes.
type UUIDSite uuid.UUID

// NewUUIDSite returns a fresh random (version 4) UUID site identifier.
func NewUUIDSite() UUIDSite {
	return UUIDSite(uuid.New())
}

// Compare orders two UUID sites by their raw bytes.
func (s UUIDSite) Compare(other UUIDSite) int {
	return bytes.Compare(s[:], other[:])
}

func (s UUIDSite) String() string {
	return uuid.UUID(s).String()
}
