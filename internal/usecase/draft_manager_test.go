package usecase

import (
	"errors"
	"testing"

	"kaenpro_os/internal/domain/entities"
)

func TestDraftManager(t *testing.T) {
	t.Run("create requires session", func(t *testing.T) {
		m := NewDraftManager(nil, nil, &seqIDGenerator{}, fixedClock{})
		if _, _, err := m.Create(entities.UserSession{}); !errors.Is(err, ErrMissingSession) {
			t.Fatalf("expected ErrMissingSession, got %v", err)
		}
	})

	t.Run("create get discard", func(t *testing.T) {
		m := NewDraftManager(nil, nil, &seqIDGenerator{}, fixedClock{})

		id, composer, err := m.Create(testSession)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" || composer == nil {
			t.Fatalf("expected draft id and composer")
		}

		got, err := m.Get(id)
		if err != nil || got != composer {
			t.Fatalf("expected same composer, got %v err=%v", got, err)
		}

		m.Discard(id)
		if _, err := m.Get(id); !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		m := NewDraftManager(nil, nil, &seqIDGenerator{}, fixedClock{})
		if _, err := m.Get("missing"); !errors.Is(err, ErrDraftNotFound) {
			t.Fatalf("expected ErrDraftNotFound, got %v", err)
		}
	})

	t.Run("drafts are independent", func(t *testing.T) {
		m := NewDraftManager(nil, nil, &seqIDGenerator{}, fixedClock{})
		id1, c1, _ := m.Create(testSession)
		id2, c2, _ := m.Create(testSession)
		if id1 == id2 {
			t.Fatalf("expected distinct draft ids")
		}
		if err := c1.SelectClient(&testClient); err != nil {
			t.Fatalf("select: %v", err)
		}
		if c2.Phase() != PhaseSelectingClient {
			t.Fatalf("expected second draft untouched, got %s", c2.Phase())
		}
	})
}
