package models

// Operator is the persistence shape of a till user.
type Operator struct {
	OperatorID   string `json:"operatorID" db:"operator_id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Name         string `json:"name" db:"name"`
	AuditFields
}
