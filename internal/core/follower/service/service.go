package followerapp

import (
	"context"
	"errors"

	"inkwell/internal/config"
	followerEntity "inkwell/internal/core/follower"
	followerPort "inkwell/internal/ports/follower"
	userPort "inkwell/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
	UserRepository     userPort.UserRepository
}

func NewFollowerService(repo followerPort.FollowerRepository, userRepo userPort.UserRepository) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
		UserRepository:     userRepo,
	}
}

// Follow makes the requester follow the named author. Following yourself is
// a silent no-op, and so is following someone you already follow.
func (s *FollowerService) Follow(ctx context.Context, requesterID, authorUsername string) error {
	author, err := s.UserRepository.FindByUsername(ctx, authorUsername)
	if err != nil {
		return ErrUserNotFound
	}

	if requesterID == author.ID.String() {
		config.Logger.Debug("self-follow ignored", zap.String("userID", requesterID))
		return nil
	}

	f := &followerEntity.Follow{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   uuid.FromStringOrNil(requesterID),
		AuthorID: author.ID,
	}
	return s.FollowerRepository.Follow(ctx, f)
}

// Unfollow removes the edge if present; a missing edge is not an error.
func (s *FollowerService) Unfollow(ctx context.Context, requesterID, authorUsername string) error {
	author, err := s.UserRepository.FindByUsername(ctx, authorUsername)
	if err != nil {
		return ErrUserNotFound
	}
	return s.FollowerRepository.Unfollow(ctx, requesterID, author.ID.String())
}

// IsFollowing reports the follow status shown on a profile page. It is false
// for the anonymous viewer and for the profile owner looking at themselves.
func (s *FollowerService) IsFollowing(ctx context.Context, requesterID, authorID string) (bool, error) {
	if requesterID == "" || requesterID == authorID {
		return false, nil
	}
	return s.FollowerRepository.IsFollowing(ctx, requesterID, authorID)
}
