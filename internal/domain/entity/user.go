package entity

import "time"

// Roles de usuario para el RBAC del API.
const (
	RoleAdmin      = "admin"
	RoleContador   = "contador"
	RoleFacturador = "facturador"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
