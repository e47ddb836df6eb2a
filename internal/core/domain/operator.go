package domain

// Operator is a till user who can authenticate against the back office.
type Operator struct {
	OperatorID   string `json:"operatorID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	AuditFields
}
