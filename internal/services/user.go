package services

import (
	"context"

	"github.com/sbilibin2017/guessing-game/internal/logger"
	"github.com/sbilibin2017/guessing-game/internal/models"
)

// UserUpserter defines write operations for users.
type UserUpserter interface {
	GetOrCreate(ctx context.Context, username string) (*models.UserDB, error)
}

// UserService resolves usernames to durable user identities.
type UserService struct {
	writer UserUpserter
}

// NewUserService creates a new UserService instance.
func NewUserService(writer UserUpserter) *UserService {
	return &UserService{writer: writer}
}

// GetOrCreate returns the user with the given username, creating it first if
// it has never been seen. Calling it repeatedly with the same username always
// yields the same record.
func (svc *UserService) GetOrCreate(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := svc.writer.GetOrCreate(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get or create user", "username", username, "err", err)
		return nil, err
	}
	return user, nil
}
