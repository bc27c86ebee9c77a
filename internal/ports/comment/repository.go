package comment

import (
	"context"

	"inkwell/internal/core/comment"
	userPort "inkwell/internal/ports/user"
)

// CommentRepository is the outbound port for comment persistence.
// FindByPostID returns comments in creation order, oldest first.
type CommentRepository interface {
	Create(ctx context.Context, comment *comment.Comment) (*comment.Comment, error)
	FindByPostID(ctx context.Context, postID string) ([]*comment.Comment, error)
	DeleteByPostID(ctx context.Context, postID string) error
}

type CommentDTO struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Author    *userPort.UserDTO `json:"author,omitempty"`
	CreatedAt string            `json:"created_at"`
}
