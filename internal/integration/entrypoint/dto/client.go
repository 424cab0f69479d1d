package dto

import (
	"time"

	"github.com/cohetebrands/backoffice/internal/domain/entity"
)

// CreateClientRequest represents the request body for client creation.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Company string `json:"company,omitempty" binding:"omitempty,max=255"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Phone   string `json:"phone,omitempty" binding:"omitempty,max=30"`
	RFC     string `json:"rfc,omitempty" binding:"omitempty,max=13"`
}

// UpdateClientRequest represents a partial client update. Absent fields are
// left unchanged.
type UpdateClientRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Company  *string `json:"company,omitempty" binding:"omitempty,max=255"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	RFC      *string `json:"rfc,omitempty" binding:"omitempty,max=13"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	RFC       string    `json:"rfc,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse wraps a collection of clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Count   int              `json:"count"`
}

// ToClientResponse converts a client entity to its API representation.
func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		RFC:       c.RFC,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClientListResponse converts a collection of clients.
func ToClientListResponse(clients []*entity.Client) ClientListResponse {
	responses := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, ToClientResponse(c))
	}
	return ClientListResponse{
		Clients: responses,
		Count:   len(responses),
	}
}
