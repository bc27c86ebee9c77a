package followerapp

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/adapters/memory"
	"inkwell/internal/config"
	"inkwell/internal/core/post"
	postapp "inkwell/internal/core/post/service"
	"inkwell/internal/core/user"
	postPort "inkwell/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	m.Run()
}

func addUser(t *testing.T, store *memory.Store, username string) *user.User {
	t.Helper()
	u := &user.User{ID: uuid.Must(uuid.NewV4()), Username: username, Password: "x"}
	if _, err := store.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("could not create user %s: %v", username, err)
	}
	return u
}

func TestFollowIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	svc := NewFollowerService(store.Followers(), store.Users())
	u1 := addUser(t, store, "u1")
	u2 := addUser(t, store, "u2")

	for i := 0; i < 3; i++ {
		if err := svc.Follow(context.Background(), u1.ID.String(), "u2"); err != nil {
			t.Fatalf("Follow #%d failed: %v", i+1, err)
		}
	}

	if n := store.EdgeCount(u1.ID.String(), u2.ID.String()); n != 1 {
		t.Fatalf("expected exactly one follow edge, got %d", n)
	}
}

func TestSelfFollowCreatesNoEdge(t *testing.T) {
	store := memory.NewStore()
	svc := NewFollowerService(store.Followers(), store.Users())
	u1 := addUser(t, store, "u1")

	if err := svc.Follow(context.Background(), u1.ID.String(), "u1"); err != nil {
		t.Fatalf("self-follow should be a silent no-op, got %v", err)
	}
	if n := store.EdgeCount(u1.ID.String(), u1.ID.String()); n != 0 {
		t.Fatalf("self-follow created %d edges", n)
	}
}

func TestUnfollowMissingEdgeIsNoOp(t *testing.T) {
	store := memory.NewStore()
	svc := NewFollowerService(store.Followers(), store.Users())
	u1 := addUser(t, store, "u1")
	addUser(t, store, "u2")

	if err := svc.Unfollow(context.Background(), u1.ID.String(), "u2"); err != nil {
		t.Fatalf("unfollow of a missing edge should not error: %v", err)
	}
}

func TestFollowUnknownUser(t *testing.T) {
	store := memory.NewStore()
	svc := NewFollowerService(store.Followers(), store.Users())
	u1 := addUser(t, store, "u1")

	if err := svc.Follow(context.Background(), u1.ID.String(), "ghost"); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestIsFollowingStatus(t *testing.T) {
	store := memory.NewStore()
	svc := NewFollowerService(store.Followers(), store.Users())
	u1 := addUser(t, store, "u1")
	u2 := addUser(t, store, "u2")

	if ok, _ := svc.IsFollowing(context.Background(), "", u2.ID.String()); ok {
		t.Fatalf("anonymous viewer must not be following anyone")
	}
	if ok, _ := svc.IsFollowing(context.Background(), u2.ID.String(), u2.ID.String()); ok {
		t.Fatalf("a user must not be reported as following themselves")
	}

	if err := svc.Follow(context.Background(), u1.ID.String(), "u2"); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}
	if ok, _ := svc.IsFollowing(context.Background(), u1.ID.String(), u2.ID.String()); !ok {
		t.Fatalf("expected follow status true after Follow")
	}

	if err := svc.Unfollow(context.Background(), u1.ID.String(), "u2"); err != nil {
		t.Fatalf("Unfollow failed: %v", err)
	}
	if ok, _ := svc.IsFollowing(context.Background(), u1.ID.String(), u2.ID.String()); ok {
		t.Fatalf("expected follow status false after Unfollow")
	}
}

// New posts by a followed author show up in the follower's feed and in
// nobody else's.
func TestFollowingFeedMembership(t *testing.T) {
	store := memory.NewStore()
	followSvc := NewFollowerService(store.Followers(), store.Users())
	postSvc := postapp.NewPostService(store.Posts(), store.Groups(), store.Comments(), memory.NewImageStore(), 10)

	u1 := addUser(t, store, "u1")
	u2 := addUser(t, store, "u2")
	u3 := addUser(t, store, "u3")

	if err := followSvc.Follow(context.Background(), u1.ID.String(), "u2"); err != nil {
		t.Fatalf("Follow failed: %v", err)
	}

	p := &post.Post{ID: uuid.Must(uuid.NewV4()), Text: "fresh", AuthorID: u2.ID, Published: time.Now()}
	if _, err := store.Posts().Create(context.Background(), p); err != nil {
		t.Fatalf("could not create post: %v", err)
	}

	u1Feed, err := postSvc.List(context.Background(), postPort.Filter{FollowedBy: u1.ID.String()}, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(u1Feed.Posts) != 1 || u1Feed.Posts[0].Text != "fresh" {
		t.Fatalf("follower's feed should contain the new post, got %d posts", len(u1Feed.Posts))
	}

	u3Feed, err := postSvc.List(context.Background(), postPort.Filter{FollowedBy: u3.ID.String()}, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(u3Feed.Posts) != 0 {
		t.Fatalf("unrelated user's feed should be empty, got %d posts", len(u3Feed.Posts))
	}
}
