package entities

// Client is an owner registered in the operator's catalog.
//
// Clients are created and edited by the registration screens outside of this
// service; here they are a read-only lookup source for the order composer.
// ID is unique within one operator's catalog.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Vehicle belongs to exactly one Client through ClientID.
type Vehicle struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Plate    string `json:"plate"`
	Model    string `json:"model"`
}

// Catalog is the per-operator snapshot loaded once per session.
type Catalog struct {
	Clients  []Client  `json:"clients"`
	Vehicles []Vehicle `json:"vehicles"`
}
