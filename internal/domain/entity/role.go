package entity

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/bharat-chakra/internal/domain"
)

// Role nivel de privilegio asignado en el login.
// El valor vacío (RoleNone) representa una sesión sin rol.
type Role string

// Roles válidos, en orden decreciente de privilegio.
const (
	RoleNone            Role = ""
	RoleNationalAdmin   Role = "national-admin"
	RoleClient          Role = "client"
	RoleCampaignManager Role = "campaign-manager"
	RoleFieldManager    Role = "field-manager"
	RoleBoothWorker     Role = "booth-worker"
)

// roleLevels rango de cada rol (mayor número = más privilegios).
// Cualquier valor fuera de la tabla, RoleNone incluido, tiene rango 0.
var roleLevels = map[Role]int{
	RoleNationalAdmin:   5,
	RoleClient:          4,
	RoleCampaignManager: 3,
	RoleFieldManager:    2,
	RoleBoothWorker:     1,
}

var roleLabels = map[Role]string{
	RoleNationalAdmin:   "National Admin",
	RoleClient:          "Client",
	RoleCampaignManager: "Campaign Manager",
	RoleFieldManager:    "Field Manager",
	RoleBoothWorker:     "Booth Worker",
}

// Roles devuelve los roles válidos de mayor a menor privilegio.
func Roles() []Role {
	return []Role{RoleNationalAdmin, RoleClient, RoleCampaignManager, RoleFieldManager, RoleBoothWorker}
}

// Level devuelve el rango del rol; 0 si el rol no existe.
func (r Role) Level() int {
	return roleLevels[r]
}

// Label nombre legible del rol ("National Admin").
func (r Role) Label() string {
	return roleLabels[r]
}

// Valid informa si el rol pertenece al enum (RoleNone no es válido).
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

var roleFolder = cases.Fold()

// ParseRole acepta el identificador ("field-manager") o la etiqueta ("Field Manager"),
// sin distinguir mayúsculas ni separadores. Devuelve ErrUnknownRole para cualquier otro valor.
func ParseRole(s string) (Role, error) {
	key := normalizeRoleKey(s)
	if key == "" {
		return RoleNone, fmt.Errorf("%w: vacío", domain.ErrUnknownRole)
	}
	for _, r := range Roles() {
		if key == string(r) || key == normalizeRoleKey(r.Label()) {
			return r, nil
		}
	}
	return RoleNone, fmt.Errorf("%w: %q", domain.ErrUnknownRole, s)
}

func normalizeRoleKey(s string) string {
	s = roleFolder.String(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), "-")
}
