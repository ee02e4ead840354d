package model

// Staff is dashboard user model entity
type Staff struct {
	ID           string
	Email        string
	PasswordHash string
}
