package entities

import "time"

// OSStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - A draft is freely mutable by the order composer.
//   - FINALIZADO is terminal: finalize stamps identifiers and persists the
//     order; no edit-after-finalize path exists.

type OSStatus string

const (
	OSStatusRascunho   OSStatus = "RASCUNHO"
	OSStatusFinalizado OSStatus = "FINALIZADO"
)

// PaymentStatus represents the payment state of a finalized order.
//
// Orders are created PENDENTE; the payment flow moves them to PAGO.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "PENDENTE"
	PaymentStatusPago     PaymentStatus = "PAGO"
)

// ItemKind distinguishes parts from manually entered labor-adjacent rows.

type ItemKind string

const (
	ItemKindPart    ItemKind = "PART"
	ItemKindService ItemKind = "SERVICE"
)

// OSItem is one billable line on an order.
//
// Invariants:
//   - Quantity and UnitPrice are never negative (guarded at the entry points).
//   - Description is upper-cased for display consistency.
//   - ID is a locally generated token, unique within one order's item list;
//     it carries no cross-order meaning.
type OSItem struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   float64  `json:"unitPrice"`
	Kind        ItemKind `json:"kind"`
}

// ServiceOrder is the priced work order for a vehicle visit.
//
// Client and vehicle data are denormalized snapshots taken at finalize time so
// the persisted order stays readable even if the catalog changes later.
//
// TotalValue is derived (items + labor - discount) and stamped on finalize;
// while drafting, the composer recomputes it on every read.
type ServiceOrder struct {
	ID            string        `json:"id"`
	OSNumber      string        `json:"osNumber"`
	ClientID      string        `json:"clientId"`
	ClientName    string        `json:"clientName"`
	VehicleID     string        `json:"vehicleId"`
	VehiclePlate  string        `json:"vehiclePlate"`
	VehicleModel  string        `json:"vehicleModel"`
	VehicleKm     string        `json:"vehicleKm"`
	Problem       string        `json:"problem"`
	Items         []OSItem      `json:"items"`
	LaborValue    float64       `json:"laborValue"`
	Discount      float64       `json:"discount"`
	TotalValue    float64       `json:"totalValue"`
	Status        OSStatus      `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
