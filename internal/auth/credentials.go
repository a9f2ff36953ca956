package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-foh-api-server/internal/models"
	"restaurant-foh-api-server/internal/store"
)

var (
	ErrEmptyName   = errors.New("staff name is required")
	ErrInvalidRole = errors.New("role must be WAITER or KITCHEN")
)

// CredentialService manages staff identity records and matches login
// attempts against them.
type CredentialService struct {
	Staff store.StaffStore
}

func NewCredentialService(staff store.StaffStore) *CredentialService {
	return &CredentialService{Staff: staff}
}

// AddStaff registers a waiter or kitchen staff member and returns the
// freshly generated secret. The secret is shown to the manager exactly
// once; there is no recovery or rotation.
func (s *CredentialService) AddStaff(ctx context.Context, role models.Role, name string) (models.StaffMember, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.StaffMember{}, "", ErrEmptyName
	}
	if role != models.RoleWaiter && role != models.RoleKitchen {
		return models.StaffMember{}, "", ErrInvalidRole
	}

	secret, err := NewSecretID()
	if err != nil {
		return models.StaffMember{}, "", err
	}
	member := models.StaffMember{
		StaffID:  NewStaffID(role),
		Name:     name,
		SecretID: secret,
	}
	member, err = s.Staff.Add(ctx, role, member)
	if err != nil {
		return models.StaffMember{}, "", fmt.Errorf("failed to add staff member: %w", err)
	}
	return member, secret, nil
}

// RemoveStaff deletes a staff record. Removing an absent record
// succeeds as a no-op.
func (s *CredentialService) RemoveStaff(ctx context.Context, role models.Role, docID string) error {
	return s.Staff.Remove(ctx, role, docID)
}

// FindByCredentials matches id and secret case-insensitively against
// all records of the role. A mismatch returns ok=false, never an
// error: there is nothing for the caller to retry or distinguish.
func (s *CredentialService) FindByCredentials(ctx context.Context, role models.Role, id, secret string) (models.StaffMember, bool, error) {
	members, err := s.Staff.ListByRole(ctx, role)
	if err != nil {
		return models.StaffMember{}, false, err
	}
	id = strings.TrimSpace(id)
	secret = strings.TrimSpace(secret)
	for _, m := range members {
		if strings.EqualFold(m.StaffID, id) && strings.EqualFold(m.SecretID, secret) {
			return m, true, nil
		}
	}
	return models.StaffMember{}, false, nil
}
