package request

import (
	"errors"

	"kaenpro_os/internal/domain/entities"
	"kaenpro_os/internal/usecase"
)

var ErrInvalidItemKind = errors.New("invalid item kind")

type SelectClientRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

type SelectVehicleRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}

// DraftFieldsRequest patches the free-text fields of a draft. Nil fields stay
// untouched; labor and discount arrive as the raw field text so an emptied
// input counts as zero downstream.
type DraftFieldsRequest struct {
	Problem       *string `json:"problem"`
	VehicleKm     *string `json:"vehicle_km"`
	Labor         *string `json:"labor"`
	Discount      *string `json:"discount"`
	PaymentStatus *string `json:"payment_status"`
}

type ItemCreateRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Kind        string  `json:"kind"`
}

// ResolveKind defaults a blank kind to PART and rejects anything that is not
// a known kind.
func (r ItemCreateRequest) ResolveKind() (entities.ItemKind, error) {
	switch entities.ItemKind(r.Kind) {
	case "":
		return entities.ItemKindPart, nil
	case entities.ItemKindPart:
		return entities.ItemKindPart, nil
	case entities.ItemKindService:
		return entities.ItemKindService, nil
	default:
		return "", ErrInvalidItemKind
	}
}

type ItemUpdateRequest struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unit_price"`
	Kind        *string  `json:"kind"`
}

func (r ItemUpdateRequest) ToPatch() (usecase.ItemPatch, error) {
	patch := usecase.ItemPatch{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
	if r.Kind != nil {
		kind := entities.ItemKind(*r.Kind)
		if kind != entities.ItemKindPart && kind != entities.ItemKindService {
			return usecase.ItemPatch{}, ErrInvalidItemKind
		}
		patch.Kind = &kind
	}
	return patch, nil
}
