package commentapp

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/adapters/memory"
	"inkwell/internal/core/post"
	"inkwell/internal/core/user"

	"github.com/gofrs/uuid"
)

func seed(t *testing.T) (*memory.Store, *CommentService, *user.User, *post.Post) {
	t.Helper()
	store := memory.NewStore()
	svc := NewCommentService(store.Comments(), store.Posts())

	u := &user.User{ID: uuid.Must(uuid.NewV4()), Username: "reader", Password: "x"}
	if _, err := store.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("could not create user: %v", err)
	}
	p := &post.Post{ID: uuid.Must(uuid.NewV4()), Text: "a post", AuthorID: u.ID, Published: time.Now()}
	if _, err := store.Posts().Create(context.Background(), p); err != nil {
		t.Fatalf("could not create post: %v", err)
	}
	return store, svc, u, p
}

func TestAddCommentLinksPostAndAuthor(t *testing.T) {
	store, svc, u, p := seed(t)

	dto, err := svc.Add(context.Background(), u.ID.String(), p.ID.String(), "well said")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if dto.Author == nil || dto.Author.ID != u.ID.String() {
		t.Fatalf("comment author should be the requester, got %+v", dto.Author)
	}

	comments, _ := store.Comments().FindByPostID(context.Background(), p.ID.String())
	if len(comments) != 1 || comments[0].Text != "well said" {
		t.Fatalf("comment not persisted as expected: %+v", comments)
	}
}

func TestAddCommentRequiresText(t *testing.T) {
	store, svc, u, p := seed(t)

	if _, err := svc.Add(context.Background(), u.ID.String(), p.ID.String(), "  "); err != ErrTextRequired {
		t.Fatalf("expected ErrTextRequired, got %v", err)
	}
	comments, _ := store.Comments().FindByPostID(context.Background(), p.ID.String())
	if len(comments) != 0 {
		t.Fatalf("no comment should exist after failed validation")
	}
}

func TestAddCommentToUnknownPost(t *testing.T) {
	_, svc, u, _ := seed(t)

	_, err := svc.Add(context.Background(), u.ID.String(), uuid.Must(uuid.NewV4()).String(), "hello?")
	if err != ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestListByPostIsOldestFirst(t *testing.T) {
	_, svc, u, p := seed(t)

	for _, text := range []string{"first", "second", "third"} {
		if _, err := svc.Add(context.Background(), u.ID.String(), p.ID.String(), text); err != nil {
			t.Fatalf("Add(%q) failed: %v", text, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	comments, err := svc.ListByPost(context.Background(), p.ID.String())
	if err != nil {
		t.Fatalf("ListByPost failed: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(comments))
	}
	for i, want := range []string{"first", "second", "third"} {
		if comments[i].Text != want {
			t.Fatalf("comment %d: expected %q, got %q", i, want, comments[i].Text)
		}
	}
}
