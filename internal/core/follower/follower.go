package follower

import (
	"time"

	"inkwell/internal/core/user"

	"github.com/gofrs/uuid"
)

// Follow is a directed edge: UserID follows AuthorID. The composite unique
// index is what keeps concurrent duplicate follows out of the table.
type Follow struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_author"`
	User      user.User `gorm:"foreignkey:UserID"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_user_author"`
	Author    user.User `gorm:"foreignkey:AuthorID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
