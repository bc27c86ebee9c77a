package post

import (
	"time"

	"inkwell/internal/core/group"
	"inkwell/internal/core/user"

	"github.com/gofrs/uuid"
)

type Post struct {
	ID       uuid.UUID   `gorm:"primary_key;type:char(36)"`
	Text     string      `gorm:"type:text;not null"`
	AuthorID uuid.UUID   `gorm:"type:char(36);not null;index"`
	Author   user.User   `gorm:"foreignkey:AuthorID"`
	GroupID  *uuid.UUID  `gorm:"type:char(36);index"`
	Group    *group.Group `gorm:"foreignkey:GroupID"`
	ImageURL string
	// Published orders every listing, newest first. Defaults to the creation
	// time but may be backdated.
	Published time.Time  `gorm:"not null;index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}
