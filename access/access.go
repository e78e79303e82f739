// Package access decides whether an identity may perform an action on a
// record. Guards run in order and the first denial wins.
package access

import (
	"logo-lms/models"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Identity is the authenticated caller. A nil *Identity is anonymous.
type Identity struct {
	UserID   uint
	Username string
	Role     models.Role
}

func (i *Identity) Authenticated() bool {
	return i != nil && i.UserID != 0
}

// Owned is implemented by every record that has a single owning user.
type Owned interface {
	OwnerID() uint
}

// Request carries everything a guard may look at. Target is nil when the
// decision is made before the record is loaded.
type Request struct {
	Identity *Identity
	Action   Action
	Target   Owned
}

type Guard func(Request) error

type Policy []Guard

// Authorize returns nil when every guard allows the request.
func (p Policy) Authorize(req Request) error {
	for _, guard := range p {
		if err := guard(req); err != nil {
			return err
		}
	}
	return nil
}

var (
	ErrUnauthenticated = &models.ErrorUnauthorized{Message: "authentication credentials were not provided"}
	ErrWrongRole       = &models.ErrorForbidden{Message: "you do not have permission to perform this action"}
	ErrNotOwner        = &models.ErrorForbidden{Message: "you do not own this resource"}
)

func RequireAuth() Guard {
	return func(req Request) error {
		if !req.Identity.Authenticated() {
			return ErrUnauthenticated
		}
		return nil
	}
}

// RequireRole matches the role exactly. An unset role never matches.
func RequireRole(role models.Role) Guard {
	return func(req Request) error {
		if !req.Identity.Authenticated() {
			return ErrUnauthenticated
		}
		if role == models.RoleUnset || req.Identity.Role != role {
			return ErrWrongRole
		}
		return nil
	}
}

func RequireOwnership() Guard {
	return func(req Request) error {
		if !req.Identity.Authenticated() {
			return ErrUnauthenticated
		}
		if req.Target == nil {
			return ErrNotOwner
		}
		owner := req.Target.OwnerID()
		if owner == 0 || owner != req.Identity.UserID {
			return ErrNotOwner
		}
		return nil
	}
}

// Only applies guard to the listed actions and allows every other action.
func Only(guard Guard, actions ...Action) Guard {
	return func(req Request) error {
		for _, a := range actions {
			if a == req.Action {
				return guard(req)
			}
		}
		return nil
	}
}
