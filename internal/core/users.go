package core

import (
	"context"
	"usermgmt/internal/repository"

	"go.uber.org/zap"
)

// Errors returned by UserManager. They are the repository sentinels, so
// errors.Is works regardless of which layer a caller inspects.
var (
	ErrUserNotFound = repository.ErrUserNotFound
	ErrPersistence  = repository.ErrPersistence
)

// UserManager exposes user CRUD and analytics on top of a Repository.
// Each method performs exactly one repository call.
type UserManager struct {
	logs *zap.SugaredLogger
	repo Repository
}

// NewUserManager is a constructor function for the UserManager type.
func NewUserManager(logger *zap.SugaredLogger, repo Repository) *UserManager {
	return &UserManager{
		logs: logger,
		repo: repo,
	}
}

func (m *UserManager) CreateUser(ctx context.Context, username string) (UserRecord, error) {
	user, err := m.repo.Save(ctx, username)
	if err != nil {
		return UserRecord{}, err
	}

	m.logs.Infow("user created", "user_id", user.ID)
	return toRecord(user), nil
}

func (m *UserManager) UpdateUser(ctx context.Context, userID int64, username string) (UserRecord, error) {
	user, err := m.repo.Update(ctx, userID, username)
	if err != nil {
		return UserRecord{}, err
	}

	return toRecord(user), nil
}

func (m *UserManager) DeleteUser(ctx context.Context, userID int64) error {
	if err := m.repo.Delete(ctx, userID); err != nil {
		return err
	}

	m.logs.Infow("user deleted", "user_id", userID)
	return nil
}

func (m *UserManager) GetUser(ctx context.Context, userID int64) (UserRecord, error) {
	user, err := m.repo.RetrieveByID(ctx, userID)
	if err != nil {
		return UserRecord{}, err
	}

	return toRecord(user), nil
}

func (m *UserManager) ListUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := m.repo.RetrieveAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, toRecord(u))
	}

	return records, nil
}

// GetUserAnalytics reads every user and summarizes their usernames.
func (m *UserManager) GetUserAnalytics(ctx context.Context) (Analytics, error) {
	users, err := m.repo.RetrieveAll(ctx)
	if err != nil {
		return Analytics{}, err
	}

	var agg UsernameAggregator
	for _, u := range users {
		agg.Add(u.Username)
	}

	return agg.Result(), nil
}

func toRecord(u repository.User) UserRecord {
	return UserRecord{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
