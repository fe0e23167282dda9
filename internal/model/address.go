package model

// Address is a delivery address in a customer's address book. At most one
// address per customer carries IsDefault.
type Address struct {
	Label     string `json:"label"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	IsDefault bool   `json:"is_default"`
}
