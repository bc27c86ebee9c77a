package follower

import (
	"context"

	"inkwell/internal/core/follower"
)

// FollowerRepository is the outbound port for follow edges. Follow must be
// idempotent: creating an edge that already exists is a no-op, and the
// store's unique constraint is the final word under concurrency.
type FollowerRepository interface {
	Follow(ctx context.Context, follow *follower.Follow) error
	Unfollow(ctx context.Context, userID, authorID string) error
	IsFollowing(ctx context.Context, userID, authorID string) (bool, error)
}
