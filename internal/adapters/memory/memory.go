package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"inkwell/internal/core/comment"
	"inkwell/internal/core/follower"
	"inkwell/internal/core/group"
	"inkwell/internal/core/post"
	"inkwell/internal/core/user"
	postPort "inkwell/internal/ports/post"
)

var ErrNotFound = errors.New("record not found")

// Store is an in-memory stand-in for the MySQL adapters. Tests run against
// it, and it keeps the same ordering and uniqueness rules the real schema
// enforces.
type Store struct {
	mu       sync.Mutex
	users    map[string]*user.User   // by ID
	groups   map[string]*group.Group // by ID
	posts    map[string]*post.Post   // by ID
	comments []*comment.Comment
	follows  []*follower.Follow
}

func NewStore() *Store {
	return &Store{
		users:  make(map[string]*user.User),
		groups: make(map[string]*group.Group),
		posts:  make(map[string]*post.Post),
	}
}

func (s *Store) Users() *UserRepo         { return &UserRepo{s} }
func (s *Store) Groups() *GroupRepo       { return &GroupRepo{s} }
func (s *Store) Posts() *PostRepo         { return &PostRepo{s} }
func (s *Store) Comments() *CommentRepo   { return &CommentRepo{s} }
func (s *Store) Followers() *FollowerRepo { return &FollowerRepo{s} }

//
// --- users ---
//

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return nil, errors.New("duplicate username")
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.s.users[u.ID.String()] = u
	return u, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

//
// --- groups ---
//

type GroupRepo struct{ s *Store }

func (r *GroupRepo) Create(ctx context.Context, g *group.Group) (*group.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.groups {
		if existing.Slug == g.Slug {
			return nil, errors.New("duplicate slug")
		}
	}
	r.s.groups[g.ID.String()] = g
	return g, nil
}

func (r *GroupRepo) FindBySlug(ctx context.Context, slug string) (*group.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, g := range r.s.groups {
		if g.Slug == slug {
			return g, nil
		}
	}
	return nil, ErrNotFound
}

func (r *GroupRepo) FindByID(ctx context.Context, id string) (*group.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if g, ok := r.s.groups[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (r *GroupRepo) List(ctx context.Context) ([]*group.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	groups := make([]*group.Group, 0, len(r.s.groups))
	for _, g := range r.s.groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Title < groups[j].Title })
	return groups, nil
}

//
// --- posts ---
//

type PostRepo struct{ s *Store }

func (r *PostRepo) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.Published.IsZero() {
		p.Published = time.Now()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	r.s.posts[p.ID.String()] = p
	return r.s.hydrate(p), nil
}

func (r *PostRepo) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.posts[p.ID.String()]; !ok {
		return nil, ErrNotFound
	}
	r.s.posts[p.ID.String()] = p
	return r.s.hydrate(p), nil
}

func (r *PostRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.posts, id)
	return nil
}

func (r *PostRepo) FindByID(ctx context.Context, id string) (*post.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.posts[id]; ok {
		return r.s.hydrate(p), nil
	}
	return nil, ErrNotFound
}

func (r *PostRepo) FindPage(ctx context.Context, f postPort.Filter, offset, limit int) ([]*post.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := r.s.filtered(f)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Published.After(matched[j].Published)
	})

	if offset >= len(matched) {
		return []*post.Post{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]*post.Post, 0, end-offset)
	for _, p := range matched[offset:end] {
		page = append(page, r.s.hydrate(p))
	}
	return page, nil
}

func (r *PostRepo) Count(ctx context.Context, f postPort.Filter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.filtered(f))), nil
}

// filtered mirrors the SQL adapter's listing contexts. Caller holds the lock.
func (s *Store) filtered(f postPort.Filter) []*post.Post {
	followed := make(map[string]bool)
	if f.FollowedBy != "" {
		for _, e := range s.follows {
			if e.UserID.String() == f.FollowedBy {
				followed[e.AuthorID.String()] = true
			}
		}
	}

	var matched []*post.Post
	for _, p := range s.posts {
		switch {
		case f.GroupID != "":
			if p.GroupID == nil || p.GroupID.String() != f.GroupID {
				continue
			}
		case f.AuthorID != "":
			if p.AuthorID.String() != f.AuthorID {
				continue
			}
		case f.FollowedBy != "":
			if !followed[p.AuthorID.String()] {
				continue
			}
		}
		matched = append(matched, p)
	}
	return matched
}

// hydrate fills the relations the SQL adapter preloads. Caller holds the lock.
func (s *Store) hydrate(p *post.Post) *post.Post {
	out := *p
	if u, ok := s.users[p.AuthorID.String()]; ok {
		out.Author = *u
	}
	if p.GroupID != nil {
		if g, ok := s.groups[p.GroupID.String()]; ok {
			out.Group = g
		}
	}
	return &out
}

//
// --- comments ---
//

type CommentRepo struct{ s *Store }

func (r *CommentRepo) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	r.s.comments = append(r.s.comments, c)
	out := *c
	if u, ok := r.s.users[c.AuthorID.String()]; ok {
		out.Author = *u
	}
	return &out, nil
}

func (r *CommentRepo) FindByPostID(ctx context.Context, postID string) ([]*comment.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []*comment.Comment
	for _, c := range r.s.comments {
		if c.PostID.String() == postID {
			out := *c
			if u, ok := r.s.users[c.AuthorID.String()]; ok {
				out.Author = *u
			}
			matched = append(matched, &out)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *CommentRepo) DeleteByPostID(ctx context.Context, postID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.comments[:0]
	for _, c := range r.s.comments {
		if c.PostID.String() != postID {
			kept = append(kept, c)
		}
	}
	r.s.comments = kept
	return nil
}

//
// --- follow edges ---
//

type FollowerRepo struct{ s *Store }

func (r *FollowerRepo) Follow(ctx context.Context, f *follower.Follow) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.follows {
		if e.UserID == f.UserID && e.AuthorID == f.AuthorID {
			return nil
		}
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	r.s.follows = append(r.s.follows, f)
	return nil
}

func (r *FollowerRepo) Unfollow(ctx context.Context, userID, authorID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.follows[:0]
	for _, e := range r.s.follows {
		if e.UserID.String() == userID && e.AuthorID.String() == authorID {
			continue
		}
		kept = append(kept, e)
	}
	r.s.follows = kept
	return nil
}

func (r *FollowerRepo) IsFollowing(ctx context.Context, userID, authorID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.follows {
		if e.UserID.String() == userID && e.AuthorID.String() == authorID {
			return true, nil
		}
	}
	return false, nil
}

// EdgeCount reports how many follow edges exist between the pair. Tests use
// it to assert idempotency.
func (s *Store) EdgeCount(userID, authorID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.follows {
		if e.UserID.String() == userID && e.AuthorID.String() == authorID {
			n++
		}
	}
	return n
}
