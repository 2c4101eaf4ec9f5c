// Package role implements the role-selection gate between sign-in and
// the admin/guest surfaces. The selection is local UI state, not an
// authorization mechanism.
package role

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// Destination is one of the named navigation targets.
type Destination string

const (
	DestLogin      Destination = "login"
	DestRoleSelect Destination = "role-select"
	DestAdmin      Destination = "admin"
	DestGuest      Destination = "guest"
)

var (
	ErrNoRoleSelected = errors.New("please select a role")
	ErrUnknownRole    = errors.New("unknown role")
)

// Identity is the sign-out side of the identity provider.
type Identity interface {
	SignOut(ctx context.Context) error
}

// Router performs one-way navigation to a destination.
type Router interface {
	Navigate(dest Destination)
}

// Selector holds the local, unauthenticated role choice.
type Selector struct {
	identity Identity
	router   Router
	log      *slog.Logger

	selected Role
}

func New(identity Identity, router Router, log *slog.Logger) *Selector {
	return &Selector{
		identity: identity,
		router:   router,
		log:      log.With("component", "role_selector"),
	}
}

// Select records a role choice. No side effects beyond local state.
func (s *Selector) Select(r Role) error {
	switch r {
	case RoleAdmin, RoleGuest:
		s.selected = r
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownRole, r)
}

// Selected returns the current choice, empty when none was made.
func (s *Selector) Selected() Role {
	return s.selected
}

// Confirm routes to the surface matching the selected role. Without a
// selection it returns a validation error and performs no transition.
func (s *Selector) Confirm() (Destination, error) {
	switch s.selected {
	case RoleAdmin:
		s.router.Navigate(DestAdmin)
		return DestAdmin, nil
	case RoleGuest:
		s.router.Navigate(DestGuest)
		return DestGuest, nil
	}
	return "", ErrNoRoleSelected
}

// Logout signs out via the identity provider and routes back to the
// entry gate, independent of any selected role. A failed sign-out does
// not navigate.
func (s *Selector) Logout(ctx context.Context) error {
	if err := s.identity.SignOut(ctx); err != nil {
		s.log.Error("sign-out failed", "error", err)
		return fmt.Errorf("sign out: %w", err)
	}

	s.router.Navigate(DestLogin)
	return nil
}
