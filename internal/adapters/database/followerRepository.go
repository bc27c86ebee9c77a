package database

import (
	"context"
	"errors"

	"inkwell/internal/config"
	"inkwell/internal/core/follower"

	"gorm.io/gorm"
)

// FollowerRepositoryDatabase implements the follower port against MySQL.
type FollowerRepositoryDatabase struct{}

func NewFollowerRepositoryDatabase() *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{}
}

// Follow inserts the edge unless it already exists. The unique index on
// (user_id, author_id) decides races; a duplicate-key insert is a no-op.
func (repo *FollowerRepositoryDatabase) Follow(ctx context.Context, f *follower.Follow) error {
	exists, err := repo.IsFollowing(ctx, f.UserID.String(), f.AuthorID.String())
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := config.DB.WithContext(ctx).Create(f).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

func (repo *FollowerRepositoryDatabase) Unfollow(ctx context.Context, userID, authorID string) error {
	return config.DB.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&follower.Follow{}).Error
}

func (repo *FollowerRepositoryDatabase) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	var count int64
	err := config.DB.WithContext(ctx).Model(&follower.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
