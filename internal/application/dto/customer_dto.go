package dto

// SaveCustomerRequest POST/PUT /api/customers gövdesi.
type SaveCustomerRequest struct {
	Kind      string `json:"kind"` // individual | corporate
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	TaxOffice string `json:"tax_office,omitempty"` // kurumsal için zorunlu
	Address   string `json:"address"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CustomerResponse müşteri yanıtı.
type CustomerResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	TaxOffice string `json:"tax_office,omitempty"`
	Address   string `json:"address"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CustomerListResponse sayfalı müşteri listesi.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
