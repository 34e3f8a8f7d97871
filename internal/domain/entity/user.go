package entity

import "time"

// Roles válidos para User, de mayor a menor privilegio.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// roleHierarchy nivel numérico de cada rol para comparaciones de permisos.
var roleHierarchy = map[string]int{
	RoleAdmin:    4,
	RoleManager:  3,
	RoleOperator: 2,
	RoleViewer:   1,
}

// ValidRole indica si el string corresponde a un rol conocido.
func ValidRole(role string) bool {
	_, ok := roleHierarchy[role]
	return ok
}

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	FullName     string
	Role         string // admin, manager, operator, viewer
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPermission true si el rol del usuario es igual o superior al requerido.
func (u *User) HasPermission(requiredRole string) bool {
	if !u.IsActive {
		return false
	}
	return roleHierarchy[u.Role] >= roleHierarchy[requiredRole]
}

// CanRegisterMovements los movimientos de inventario requieren operator o superior.
func (u *User) CanRegisterMovements() bool {
	return u.HasPermission(RoleOperator)
}

// CanManageProducts crear/editar productos requiere manager o superior.
func (u *User) CanManageProducts() bool {
	return u.HasPermission(RoleManager)
}
