package response

import (
	"kaenpro_os/internal/domain/entities"
	"time"
)

type OSItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Kind        string  `json:"kind"`
}

type ServiceOrderResponse struct {
	ID            string           `json:"id"`
	OSNumber      string           `json:"os_number"`
	ClientID      string           `json:"client_id"`
	ClientName    string           `json:"client_name"`
	VehicleID     string           `json:"vehicle_id"`
	VehiclePlate  string           `json:"vehicle_plate"`
	VehicleModel  string           `json:"vehicle_model"`
	VehicleKm     string           `json:"vehicle_km"`
	Problem       string           `json:"problem"`
	Items         []OSItemResponse `json:"items"`
	LaborValue    float64          `json:"labor_value"`
	Discount      float64          `json:"discount"`
	TotalValue    float64          `json:"total_value"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"payment_status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func FromOSItem(i entities.OSItem) OSItemResponse {
	return OSItemResponse{
		ID:          i.ID,
		Description: i.Description,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		Kind:        string(i.Kind),
	}
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]OSItemResponse, 0, len(o.Items))
	for _, i := range o.Items {
		items = append(items, FromOSItem(i))
	}
	return ServiceOrderResponse{
		ID:            o.ID,
		OSNumber:      o.OSNumber,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		VehicleID:     o.VehicleID,
		VehiclePlate:  o.VehiclePlate,
		VehicleModel:  o.VehicleModel,
		VehicleKm:     o.VehicleKm,
		Problem:       o.Problem,
		Items:         items,
		LaborValue:    o.LaborValue,
		Discount:      o.Discount,
		TotalValue:    o.TotalValue,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
