package entity

import "time"

// Client cliente del CRM (destinatario de devis y facturas).
type Client struct {
	ID           string
	CompanyID    string
	ClientNumber string // CLI-000001
	FullName     string
	Email        string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
