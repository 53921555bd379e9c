package entity

import (
	"time"

	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// Lead prospecto comercial.
type Lead struct {
	ID        string
	CompanyID string
	Number    string
	FullName  string
	Email     string
	Phone     string
	Status    status.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Project proyecto de fabricación / instalación de un cliente.
type Project struct {
	ID        string
	CompanyID string
	ClientID  string
	Number    string
	Name      string
	Status    status.Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
