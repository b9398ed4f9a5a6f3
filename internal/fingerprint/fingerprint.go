// Package fingerprint computes content digests of layouts.
//
// Gridboard compares fingerprints to decide whether an edited default layout
// actually differs from its template before forking it into a saved layout.
// Digests are SHA-512 over a canonical JSON form in which every object key is
// sorted, so field or settings-key order never changes the result. The digest
// is used only for equality checks. A fake implementation is provided for
// testing.
package fingerprint

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/danieljhkim/gridboard/internal/layout"
)

// Fingerprinter provides an abstraction for layout digests.
type Fingerprinter interface {
	// Fingerprint computes the digest of the given layout.
	Fingerprint(page layout.Page) (string, error)
}

// SHA512Fingerprinter implements Fingerprinter using SHA-512.
type SHA512Fingerprinter struct{}

// NewSHA512Fingerprinter creates a new SHA512Fingerprinter.
func NewSHA512Fingerprinter() *SHA512Fingerprinter {
	return &SHA512Fingerprinter{}
}

// Fingerprint computes the SHA-512 digest of the canonical form of page.
func (f *SHA512Fingerprinter) Fingerprint(page layout.Page) (string, error) {
	canonical, err := Canonical(page)
	if err != nil {
		return "", err
	}
	sum := sha512.Sum512(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Canonical returns the canonical JSON serialization of v: object keys are
// sorted at every depth and numbers keep their literal text.
func Canonical(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}

	// encoding/json writes map keys in sorted order
	out, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal canonical layout: %w", err)
	}
	return out, nil
}

// Equal reports whether two layouts have the same fingerprint.
func Equal(f Fingerprinter, a, b layout.Page) (bool, error) {
	fa, err := f.Fingerprint(a)
	if err != nil {
		return false, err
	}
	fb, err := f.Fingerprint(b)
	if err != nil {
		return false, err
	}
	return fa == fb, nil
}

// FakeFingerprinter implements Fingerprinter with predetermined digests for testing.
type FakeFingerprinter struct {
	digests map[string]string
	calls   int
}

// NewFakeFingerprinter creates a new FakeFingerprinter.
func NewFakeFingerprinter() *FakeFingerprinter {
	return &FakeFingerprinter{
		digests: make(map[string]string),
	}
}

// SetDigest sets the digest returned for a layout id (for testing).
func (f *FakeFingerprinter) SetDigest(id, digest string) {
	f.digests[id] = digest
}

// Calls returns how many digests were computed.
func (f *FakeFingerprinter) Calls() int {
	return f.calls
}

// Fingerprint returns the predetermined digest for the layout id.
func (f *FakeFingerprinter) Fingerprint(page layout.Page) (string, error) {
	f.calls++
	if digest, ok := f.digests[page.ID]; ok {
		return digest, nil
	}
	// Default digest if not set
	return "fakedigest", nil
}
