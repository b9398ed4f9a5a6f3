// Package ident generates the opaque identifiers assigned to layouts, tabs
// and widgets.
//
// Identifiers are random (version 4) UUIDs in the canonical 36 character
// 8-4-4-4-12 form. A deterministic generator is provided for tests.
package ident

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator produces globally unique identifiers.
type Generator interface {
	// NewID returns a fresh identifier.
	NewID() string
}

// UUIDGenerator implements Generator using random UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID string.
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator implements Generator with predictable ids for testing.
// Ids keep the UUID shape so they survive schema validation.
type SequenceGenerator struct {
	prefix string
	next   int
}

// NewSequenceGenerator creates a SequenceGenerator. The prefix must be
// exactly 8 hex characters.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (g *SequenceGenerator) NewID() string {
	g.next++
	return fmt.Sprintf("%s-0000-4000-8000-%012x", g.prefix, g.next)
}

// Valid reports whether id parses as a UUID.
func Valid(id string) bool {
	return uuid.Validate(id) == nil
}
