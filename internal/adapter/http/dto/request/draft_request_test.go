package request

import (
	"errors"
	"testing"

	"kaenpro_os/internal/domain/entities"
)

func TestItemCreateRequest_ResolveKind(t *testing.T) {
	t.Run("blank defaults to PART", func(t *testing.T) {
		kind, err := ItemCreateRequest{}.ResolveKind()
		if err != nil || kind != entities.ItemKindPart {
			t.Fatalf("expected PART, got %s err=%v", kind, err)
		}
	})

	t.Run("service accepted", func(t *testing.T) {
		kind, err := ItemCreateRequest{Kind: "SERVICE"}.ResolveKind()
		if err != nil || kind != entities.ItemKindService {
			t.Fatalf("expected SERVICE, got %s err=%v", kind, err)
		}
	})

	t.Run("unknown rejected", func(t *testing.T) {
		if _, err := (ItemCreateRequest{Kind: "OTHER"}).ResolveKind(); !errors.Is(err, ErrInvalidItemKind) {
			t.Fatalf("expected ErrInvalidItemKind, got %v", err)
		}
	})
}

func TestItemUpdateRequest_ToPatch(t *testing.T) {
	t.Run("nil fields stay nil", func(t *testing.T) {
		patch, err := ItemUpdateRequest{}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Description != nil || patch.Quantity != nil || patch.UnitPrice != nil || patch.Kind != nil {
			t.Fatalf("expected empty patch, got %+v", patch)
		}
	})

	t.Run("fields carried over", func(t *testing.T) {
		desc := "pastilha"
		qty := 2.0
		kind := "PART"
		patch, err := ItemUpdateRequest{Description: &desc, Quantity: &qty, Kind: &kind}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *patch.Description != "pastilha" || *patch.Quantity != 2 || *patch.Kind != entities.ItemKindPart {
			t.Fatalf("unexpected patch: %+v", patch)
		}
	})

	t.Run("invalid kind rejected", func(t *testing.T) {
		kind := "OTHER"
		if _, err := (ItemUpdateRequest{Kind: &kind}).ToPatch(); !errors.Is(err, ErrInvalidItemKind) {
			t.Fatalf("expected ErrInvalidItemKind, got %v", err)
		}
	})
}
