package entity

// Roles válidos del back-office (claim "role" del JWT).
const (
	RoleAdmin      = "admin"
	RoleCommercial = "commercial"
	RoleComptable  = "comptable"
)
