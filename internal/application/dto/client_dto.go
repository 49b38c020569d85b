package dto

// CreateClientRequest corpo do cadastro de cliente.
type CreateClientRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"` // PF, PJ
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// ClientResponse um cliente.
type ClientResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Document  string `json:"document"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
