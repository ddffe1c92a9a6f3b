package cashflow

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestResolveID(t *testing.T) {
	a := ID{uuid.MustParse("11111111-2222-3333-4444-555555555555")}
	b := ID{uuid.MustParse("11111111-aaaa-bbbb-cccc-dddddddddddd")}
	c := ID{uuid.MustParse("99999999-0000-1111-2222-333333333333")}
	candidates := []ID{a, b, c}

	t.Run("full id", func(t *testing.T) {
		got, err := resolveID(a.String(), candidates)
		if err != nil {
			t.Fatal(err)
		}
		if got != a {
			t.Errorf("resolved %s, want %s", got, a)
		}
	})

	t.Run("unique prefix", func(t *testing.T) {
		got, err := resolveID("99999999", candidates)
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("resolved %s, want %s", got, c)
		}
	})

	t.Run("ambiguous prefix", func(t *testing.T) {
		_, err := resolveID("11111111", candidates)
		if !errors.Is(err, ErrAmbiguousID) {
			t.Errorf("got %v, want ErrAmbiguousID", err)
		}
	})

	t.Run("no match", func(t *testing.T) {
		_, err := resolveID("deadbeef", candidates)
		if !errors.Is(err, ErrUnknownID) {
			t.Errorf("got %v, want ErrUnknownID", err)
		}
	})

	t.Run("too short", func(t *testing.T) {
		_, err := resolveID("9999", candidates)
		if !errors.Is(err, ErrUnknownID) {
			t.Errorf("got %v, want ErrUnknownID", err)
		}
	})

	t.Run("unknown full id", func(t *testing.T) {
		_, err := resolveID(uuid.NewString(), candidates)
		if !errors.Is(err, ErrUnknownID) {
			t.Errorf("got %v, want ErrUnknownID", err)
		}
	})
}

func TestIDShort(t *testing.T) {
	id := ID{uuid.MustParse("a1b2c3d4-0000-1111-2222-333333333333")}
	if got := id.Short(); got != "a1b2c3d4" {
		t.Errorf("Short() = %q, want %q", got, "a1b2c3d4")
	}
	if !id.HasPrefix("A1B2") {
		t.Error("HasPrefix should be case-insensitive")
	}
}
