package response

import "kaenpro_os/internal/domain/entities"

type InvoiceRowResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Amount      float64 `json:"amount"`
	Labor       bool    `json:"labor"`
}

type InvoiceDocumentResponse struct {
	OSNumber     string               `json:"os_number"`
	IssuedAt     string               `json:"issued_at"`
	ClientName   string               `json:"client_name"`
	VehiclePlate string               `json:"vehicle_plate"`
	VehicleModel string               `json:"vehicle_model"`
	VehicleKm    string               `json:"vehicle_km"`
	Narrative    string               `json:"narrative"`
	Rows         []InvoiceRowResponse `json:"rows"`
	TotalValue   float64              `json:"total_value"`
	FileName     string               `json:"file_name"`
}

func FromInvoiceDocument(d entities.InvoiceDocument) InvoiceDocumentResponse {
	rows := make([]InvoiceRowResponse, 0, len(d.Rows))
	for _, r := range d.Rows {
		rows = append(rows, InvoiceRowResponse{
			Description: r.Description,
			Quantity:    r.Quantity,
			Amount:      r.Amount,
			Labor:       r.Labor,
		})
	}
	return InvoiceDocumentResponse{
		OSNumber:     d.OSNumber,
		IssuedAt:     d.IssuedAt,
		ClientName:   d.ClientName,
		VehiclePlate: d.VehiclePlate,
		VehicleModel: d.VehicleModel,
		VehicleKm:    d.VehicleKm,
		Narrative:    d.Narrative,
		Rows:         rows,
		TotalValue:   d.TotalValue,
		FileName:     d.FileName,
	}
}
