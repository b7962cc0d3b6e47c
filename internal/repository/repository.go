package repository

import (
	"context"
	"errors"
	"fmt"
	"usermgmt/internal/db"
)

const (
	idColumn       = "user_id"
	usernameColumn = "username"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrPersistence error = errors.New("persistence failure")

// UserRepository is the only component that talks to the users table.
// It keeps no state between calls; every operation goes to the store.
type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Migrate creates or syncs the users table without dropping data.
func (r *UserRepository) Migrate() error {
	err := r.db.MigrateTable(&User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *UserRepository) Save(ctx context.Context, username string) (User, error) {
	user := User{
		Username: username,
	}

	if err := r.db.Create(ctx, &user); err != nil {
		return User{}, fmt.Errorf("failed to create user: %w: %w", ErrPersistence, err)
	}

	return user, nil
}

// Update overwrites the username of an existing user. Concurrent updates to
// the same id are not coordinated; the last write wins.
func (r *UserRepository) Update(ctx context.Context, userID int64, username string) (User, error) {
	user, err := r.findByID(ctx, userID)
	if err != nil {
		return User{}, fmt.Errorf("failed to update user: %w", err)
	}

	err = r.db.Update(ctx, &user, usernameColumn, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, fmt.Errorf("failed to update user: %w", ErrUserNotFound)
		}
		return User{}, fmt.Errorf("failed to update user: %w: %w", ErrPersistence, err)
	}
	user.Username = username

	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	user, err := r.findByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	err = r.db.Delete(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("failed to delete user: %w", ErrUserNotFound)
		}
		return fmt.Errorf("failed to delete user: %w: %w", ErrPersistence, err)
	}

	return nil
}

func (r *UserRepository) RetrieveByID(ctx context.Context, userID int64) (User, error) {
	user, err := r.findByID(ctx, userID)
	if err != nil {
		return User{}, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) RetrieveAll(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.GetAll(ctx, idColumn, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve all users: %w: %w", ErrPersistence, err)
	}

	return users, nil
}

func (r *UserRepository) findByID(ctx context.Context, userID int64) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, idColumn, userID, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return user, nil
}
