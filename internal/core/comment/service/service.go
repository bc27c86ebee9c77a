package commentapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	commentEntity "inkwell/internal/core/comment"
	commentPort "inkwell/internal/ports/comment"
	postPort "inkwell/internal/ports/post"
	userPort "inkwell/internal/ports/user"

	"github.com/gofrs/uuid"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrTextRequired = errors.New("text is required")
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
	}
}

// Add attaches a new comment to the post, authored by the requester.
func (s *CommentService) Add(ctx context.Context, requesterID, postID, text string) (*commentPort.CommentDTO, error) {
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, ErrPostNotFound
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	c := &commentEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		Text:     text,
		PostID:   uuid.FromStringOrNil(postID),
		AuthorID: uuid.FromStringOrNil(requesterID),
	}

	created, err := s.CommentRepository.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return toDTO(created), nil
}

// ListByPost returns the post's comments in creation order, oldest first.
func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*commentPort.CommentDTO, error) {
	comments, err := s.CommentRepository.FindByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	return dtos, nil
}

func toDTO(c *commentEntity.Comment) *commentPort.CommentDTO {
	dto := &commentPort.CommentDTO{
		ID:        c.ID.String(),
		Text:      c.Text,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.Author.Username != "" {
		dto.Author = &userPort.UserDTO{
			ID:       c.Author.ID.String(),
			Username: c.Author.Username,
		}
	}
	return dto
}
