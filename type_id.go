package cashflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// shortIDLen is the number of leading characters shown in listings and
// accepted as a prefix reference.
const shortIDLen = 8

var (
	// ErrUnknownID is returned when a reference matches no record.
	ErrUnknownID = errors.New("unknown id")
	// ErrAmbiguousID is returned when a short reference matches more than one record.
	ErrAmbiguousID = errors.New("ambiguous id")
)

// ID is an opaque, globally unique record identifier. IDs are only ever
// compared for equality or by prefix; they carry no ordering semantics.
type ID struct {
	uuid.UUID
}

// NewID returns a fresh random ID.
func NewID() ID { return ID{uuid.New()} }

// Short returns the leading characters of the ID used in listings.
func (id ID) Short() string { return id.String()[:shortIDLen] }

// HasPrefix reports whether the ID's string form starts with the given
// prefix, case-insensitively.
func (id ID) HasPrefix(prefix string) bool {
	return strings.HasPrefix(id.String(), strings.ToLower(prefix))
}

// resolveID resolves a user-entered reference against a set of candidate IDs.
// A full ID matches directly; otherwise the reference is treated as a prefix
// of at least shortIDLen characters. No match yields ErrUnknownID, several
// matches yield ErrAmbiguousID.
func resolveID(ref string, candidates []ID) (ID, error) {
	if full, err := uuid.Parse(ref); err == nil {
		for _, id := range candidates {
			if id.UUID == full {
				return id, nil
			}
		}
		return ID{}, fmt.Errorf("%w: %q", ErrUnknownID, ref)
	}

	if len(ref) < shortIDLen {
		return ID{}, fmt.Errorf("%w: %q is too short, use at least the first %d characters", ErrUnknownID, ref, shortIDLen)
	}

	var found []ID
	for _, id := range candidates {
		if id.HasPrefix(ref) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return ID{}, fmt.Errorf("%w: no record starts with %q", ErrUnknownID, ref)
	case 1:
		return found[0], nil
	default:
		return ID{}, fmt.Errorf("%w: %d records start with %q, use the full id", ErrAmbiguousID, len(found), ref)
	}
}
