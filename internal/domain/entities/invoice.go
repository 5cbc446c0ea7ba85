package entities

// InvoiceRow is one rendered line of the invoice item table.
//
// Amount is Quantity x UnitPrice, precomputed so renderers stay layout-only.
type InvoiceRow struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Amount      float64 `json:"amount"`
	Labor       bool    `json:"labor"`
}

// InvoiceDocument is the read-only view built from a finalized ServiceOrder.
//
// The labor row, when present, is always the trailing row of Rows.
type InvoiceDocument struct {
	OSNumber     string       `json:"osNumber"`
	IssuedAt     string       `json:"issuedAt"`
	ClientName   string       `json:"clientName"`
	VehiclePlate string       `json:"vehiclePlate"`
	VehicleModel string       `json:"vehicleModel"`
	VehicleKm    string       `json:"vehicleKm"`
	Narrative    string       `json:"narrative"`
	Rows         []InvoiceRow `json:"rows"`
	TotalValue   float64      `json:"totalValue"`
	FileName     string       `json:"fileName"`
}
