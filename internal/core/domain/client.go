package domain

// Client is a customer or a consignment supplier.
type Client struct {
	ClientID  string `json:"clientID"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	AuditFields
}
