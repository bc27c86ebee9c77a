package group

import (
	"time"

	"github.com/gofrs/uuid"
)

// Group is a named community posts may optionally belong to. Groups are
// created by an administrator and referenced, never owned, by posts.
type Group struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	Title       string    `gorm:"not null"`
	Slug        string    `gorm:"unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
