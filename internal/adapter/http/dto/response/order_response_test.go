package response

import (
	"testing"
	"time"

	"kaenpro_os/internal/domain/entities"
)

func TestFromServiceOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.ServiceOrder{
		ID:            "id-1",
		OSNumber:      "KP-123456",
		ClientID:      "c1",
		ClientName:    "João Silva",
		VehicleID:     "v1",
		VehiclePlate:  "ABC-1234",
		VehicleModel:  "Gol 1.6",
		VehicleKm:     "85000",
		Problem:       "Barulho ao frear",
		Items:         []entities.OSItem{{ID: "a", Description: "PASTILHA", Quantity: 2, UnitPrice: 45, Kind: entities.ItemKindPart}},
		LaborValue:    150,
		Discount:      10,
		TotalValue:    230,
		Status:        entities.OSStatusFinalizado,
		PaymentStatus: entities.PaymentStatusPendente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res := FromServiceOrder(o)
	if res.OSNumber != "KP-123456" || res.ClientName != "João Silva" {
		t.Fatalf("unexpected header fields: %+v", res)
	}
	if res.Status != "FINALIZADO" || res.PaymentStatus != "PENDENTE" {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].Kind != "PART" || res.Items[0].UnitPrice != 45 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.TotalValue != 230 || res.LaborValue != 150 || res.Discount != 10 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromServiceOrders_Empty(t *testing.T) {
	res := FromServiceOrders(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty slice, got %#v", res)
	}
}
