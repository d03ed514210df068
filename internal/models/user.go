package models

// User maps the users table.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	AuditFields
}
