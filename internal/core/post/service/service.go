package postapp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"inkwell/internal/config"
	postEntity "inkwell/internal/core/post"
	"inkwell/internal/pager"
	commentPort "inkwell/internal/ports/comment"
	groupPort "inkwell/internal/ports/group"
	mediaPort "inkwell/internal/ports/media"
	postPort "inkwell/internal/ports/post"
	userPort "inkwell/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

var (
	ErrNotFound      = errors.New("post not found")
	ErrForbidden     = errors.New("not the post author")
	ErrTextRequired  = errors.New("text is required")
	ErrGroupNotFound = errors.New("group not found")
)

type PostService struct {
	PostRepository    postPort.PostRepository
	GroupRepository   groupPort.GroupRepository
	CommentRepository commentPort.CommentRepository
	Images            mediaPort.ImageStore
	PageSize          int
}

func NewPostService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	commentRepo commentPort.CommentRepository,
	images mediaPort.ImageStore,
	pageSize int,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		GroupRepository:   groupRepo,
		CommentRepository: commentRepo,
		Images:            images,
		PageSize:          pageSize,
	}
}

// Input carries the author-editable post fields. Author and ID are never
// part of it; they come from the authenticated requester and the route.
type Input struct {
	Text      string
	GroupID   string
	ImageName string
	Image     io.Reader
	// Published is only honored on create; zero means now.
	Published time.Time
}

// Listing is one page of a filtered post collection.
type Listing struct {
	Posts []*postPort.PostDTO `json:"posts"`
	Page  pager.Page          `json:"page"`
}

// Create persists a new post owned by the requester.
func (s *PostService) Create(ctx context.Context, authorID string, in Input) (*postPort.PostDTO, error) {
	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}

	if strings.TrimSpace(in.Text) == "" {
		return nil, ErrTextRequired
	}

	groupID, err := s.resolveGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.storeImage(ctx, in)
	if err != nil {
		return nil, err
	}

	published := in.Published
	if published.IsZero() {
		published = time.Now()
	}

	p := &postEntity.Post{
		ID:        uuid.Must(uuid.NewV4()),
		Text:      in.Text,
		AuthorID:  aid,
		GroupID:   groupID,
		ImageURL:  imageURL,
		Published: published,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	config.Logger.Info("post created",
		zap.String("postID", created.ID.String()),
		zap.String("authorID", created.AuthorID.String()))

	full, err := s.PostRepository.FindByID(ctx, created.ID.String())
	if err != nil {
		return toDTO(created), nil
	}
	return toDTO(full), nil
}

// Update edits a post in place. Only the author may do so: anyone else gets
// ErrForbidden and the stored post is left untouched, valid input or not.
func (s *PostService) Update(ctx context.Context, requesterID, postID string, in Input) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, ErrNotFound
	}

	if p.AuthorID.String() != requesterID {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(in.Text) == "" {
		return nil, ErrTextRequired
	}

	groupID, err := s.resolveGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.storeImage(ctx, in)
	if err != nil {
		return nil, err
	}

	p.Text = in.Text
	p.GroupID = groupID
	if imageURL != "" {
		p.ImageURL = imageURL
	}

	updated, err := s.PostRepository.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return toDTO(updated), nil
}

// Delete removes a post and its comments. Author-only, like Update.
func (s *PostService) Delete(ctx context.Context, requesterID, postID string) error {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return ErrNotFound
	}
	if p.AuthorID.String() != requesterID {
		return ErrForbidden
	}
	if err := s.PostRepository.Delete(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if err := s.CommentRepository.DeleteByPostID(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}
	return nil
}

// Get loads one post plus its author's total post count.
func (s *PostService) Get(ctx context.Context, postID string) (*postPort.PostDTO, int64, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, 0, ErrNotFound
	}
	count, err := s.PostRepository.Count(ctx, postPort.Filter{AuthorID: p.AuthorID.String()})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count author posts: %w", err)
	}
	return toDTO(p), count, nil
}

// List returns one page of the filtered collection, newest first. The same
// path serves the home listing, a group's listing, an author's listing, and
// the following feed.
func (s *PostService) List(ctx context.Context, f postPort.Filter, page int) (*Listing, error) {
	total, err := s.PostRepository.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	pg := pager.Paginate(page, s.PageSize, total)

	posts, err := s.PostRepository.FindPage(ctx, f, pg.Offset, pg.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toDTO(p))
	}

	return &Listing{Posts: dtos, Page: pg}, nil
}

func (s *PostService) resolveGroup(ctx context.Context, groupID string) (*uuid.UUID, error) {
	if groupID == "" {
		return nil, nil
	}
	g, err := s.GroupRepository.FindByID(ctx, groupID)
	if err != nil {
		return nil, ErrGroupNotFound
	}
	return &g.ID, nil
}

func (s *PostService) storeImage(ctx context.Context, in Input) (string, error) {
	if in.Image == nil {
		return "", nil
	}
	url, err := s.Images.Save(ctx, in.ImageName, in.Image)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return url, nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	dto := &postPort.PostDTO{
		ID:        p.ID.String(),
		Text:      p.Text,
		ImageURL:  p.ImageURL,
		Published: p.Published.Format(time.RFC3339),
	}
	if p.Author.Username != "" {
		dto.Author = &userPort.UserDTO{
			ID:        p.Author.ID.String(),
			Username:  p.Author.Username,
			FirstName: p.Author.FirstName,
			LastName:  p.Author.LastName,
		}
	}
	if p.Group != nil {
		dto.Group = &groupPort.GroupDTO{
			ID:    p.Group.ID.String(),
			Title: p.Group.Title,
			Slug:  p.Group.Slug,
		}
	}
	return dto
}
