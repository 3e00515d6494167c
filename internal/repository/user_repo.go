package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"patient_registry/internal/model"
	"patient_registry/internal/store"
)

// UserRepository defines operations for credential data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type userRepository struct {
	users *store.Collection[model.User]
}

// NewUserRepository creates a new UserRepository over the users collection
func NewUserRepository(users *store.Collection[model.User]) UserRepository {
	return &userRepository{users: users}
}

// Create appends a new credential record. The case-insensitive duplicate
// scan runs inside the collection's critical section, so two concurrent
// registrations of the same ID cannot both commit; the loser gets
// ErrDuplicateID.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	err := r.users.Update(ctx, func(users []model.User) ([]model.User, error) {
		for _, u := range users {
			if strings.EqualFold(u.ID, user.ID) {
				return nil, ErrDuplicateID
			}
		}
		return append(users, *user), nil
	})
	if errors.Is(err, ErrDuplicateID) {
		return ErrDuplicateID
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID retrieves a credential by its case-insensitively matched ID,
// or nil if no record matches
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for i := range users {
		if strings.EqualFold(users[i].ID, id) {
			return &users[i], nil
		}
	}
	return nil, nil // Not found, service layer handles it
}
