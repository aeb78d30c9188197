package data

import "slices"

type Permission string

type Permissions []Permission

const (
	PermissionActorsRead   Permission = "get:actors"
	PermissionActorsCreate Permission = "post:actors"
	PermissionActorsUpdate Permission = "patch:actors"
	PermissionActorsDelete Permission = "delete:actors"
	PermissionMoviesRead   Permission = "get:movies"
	PermissionMoviesCreate Permission = "post:movies"
	PermissionMoviesUpdate Permission = "patch:movies"
	PermissionMoviesDelete Permission = "delete:movies"
)

const (
	RoleAssistant = "assistant"
	RoleDirector  = "director"
	RoleProducer  = "producer"
)

// each role includes everything the previous one can do
var (
	assistantPermissions = Permissions{
		PermissionActorsRead,
		PermissionMoviesRead,
	}

	directorPermissions = append(slices.Clone(assistantPermissions),
		PermissionActorsCreate,
		PermissionActorsDelete,
		PermissionActorsUpdate,
		PermissionMoviesUpdate,
	)

	producerPermissions = append(slices.Clone(directorPermissions),
		PermissionMoviesCreate,
		PermissionMoviesDelete,
	)
)

func (p Permissions) Includes(code Permission) bool {
	return slices.Contains(p, code)
}

// RolePermissions returns a copy of the permissions granted to role.
// The second value is false for unknown roles.
func RolePermissions(role string) (Permissions, bool) {
	switch role {
	case RoleAssistant:
		return slices.Clone(assistantPermissions), true
	case RoleDirector:
		return slices.Clone(directorPermissions), true
	case RoleProducer:
		return slices.Clone(producerPermissions), true
	default:
		return nil, false
	}
}
