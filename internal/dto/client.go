package dto

import "github.com/caisse-pos/caisse_backend/internal/core/domain"

// CreateClientRequest defines the payload to register a client.
type CreateClientRequest struct {
	LastName  string `json:"lastName" binding:"required"`
	FirstName string `json:"firstName"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID  string `json:"clientID"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		LastName:  c.LastName,
		FirstName: c.FirstName,
	}
}

// ToClientResponses converts a slice of domain.Client to []ClientResponse.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(&c)
	}
	return responses
}
