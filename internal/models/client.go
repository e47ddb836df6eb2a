package models

// Client is the persistence shape of a customer or consignor.
type Client struct {
	ClientID  string `json:"clientID" db:"client_id"`
	LastName  string `json:"lastName" db:"last_name"`
	FirstName string `json:"firstName" db:"first_name"`
	AuditFields
}
