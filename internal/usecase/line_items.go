package usecase

import (
	"strings"

	"kaenpro_os/internal/domain/entities"
)

// ItemPatch carries the fields of a line-item update. Nil fields are left
// unchanged. Negative quantity or unit price is a defect, not a feature, so
// such values are dropped instead of applied.
type ItemPatch struct {
	Description *string
	Quantity    *float64
	UnitPrice   *float64
	Kind        *entities.ItemKind
}

// The list transitions below are pure: they return a fresh slice and never
// mutate their input, so a whole draft can be snapshotted and replayed in
// tests. List order is display order is invoice line order; nothing sorts.

func appendItem(items []entities.OSItem, it entities.OSItem) []entities.OSItem {
	out := make([]entities.OSItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, it)
}

func appendItems(items []entities.OSItem, batch []entities.OSItem) []entities.OSItem {
	out := make([]entities.OSItem, 0, len(items)+len(batch))
	out = append(out, items...)
	return append(out, batch...)
}

// patchItem replaces the named fields on the item matching id. An unknown id
// is a silent no-op; the UI fires updates concurrently with async operations
// and a stale id must never fail the edit.
func patchItem(items []entities.OSItem, id string, patch ItemPatch) []entities.OSItem {
	out := make([]entities.OSItem, len(items))
	for i, it := range items {
		if it.ID == id {
			if patch.Description != nil {
				it.Description = strings.ToUpper(*patch.Description)
			}
			if patch.Quantity != nil && *patch.Quantity >= 0 {
				it.Quantity = *patch.Quantity
			}
			if patch.UnitPrice != nil && *patch.UnitPrice >= 0 {
				it.UnitPrice = *patch.UnitPrice
			}
			if patch.Kind != nil {
				it.Kind = *patch.Kind
			}
		}
		out[i] = it
	}
	return out
}

// removeItem drops the item matching id; an unknown id is a no-op.
func removeItem(items []entities.OSItem, id string) []entities.OSItem {
	out := make([]entities.OSItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
