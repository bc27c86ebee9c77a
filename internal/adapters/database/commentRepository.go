package database

import (
	"context"

	"inkwell/internal/config"
	"inkwell/internal/core/comment"
)

// CommentRepositoryDatabase implements the comment port against MySQL.
type CommentRepositoryDatabase struct{}

func NewCommentRepositoryDatabase() *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := config.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) FindByPostID(ctx context.Context, postID string) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	err := config.DB.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (repo *CommentRepositoryDatabase) DeleteByPostID(ctx context.Context, postID string) error {
	return config.DB.WithContext(ctx).Where("post_id = ?", postID).Delete(&comment.Comment{}).Error
}
