package post

import (
	"context"

	"inkwell/internal/core/post"
	groupPort "inkwell/internal/ports/group"
	userPort "inkwell/internal/ports/user"
)

// Filter narrows a listing to one of the four contexts: everything (zero
// value), one group, one author, or authors followed by a given user. The
// fields are mutually exclusive; repositories apply whichever one is set.
type Filter struct {
	GroupID    string
	AuthorID   string
	FollowedBy string
}

// PostRepository is the outbound port for post persistence. FindPage and
// Count see the same filtered collection, ordered by publish time descending.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	Update(ctx context.Context, post *post.Post) (*post.Post, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*post.Post, error)
	FindPage(ctx context.Context, f Filter, offset, limit int) ([]*post.Post, error)
	Count(ctx context.Context, f Filter) (int64, error)
}

type PostDTO struct {
	ID        string              `json:"id"`
	Text      string              `json:"text"`
	Author    *userPort.UserDTO   `json:"author,omitempty"`
	Group     *groupPort.GroupDTO `json:"group,omitempty"`
	ImageURL  string              `json:"image_url,omitempty"`
	Published string              `json:"published"`
}
