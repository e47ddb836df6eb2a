package dto

import "time"

// LoginRequest defines the payload for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse defines the data returned after a successful login.
type LoginResponse struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expiresAt"`
	OperatorID string    `json:"operatorID"`
	Name       string    `json:"name"`
}

// RegisterOperatorRequest defines the payload to register a till operator.
type RegisterOperatorRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}
