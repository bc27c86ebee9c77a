package database

import (
	"context"

	"inkwell/internal/config"
	"inkwell/internal/core/follower"
	"inkwell/internal/core/post"
	postPort "inkwell/internal/ports/post"

	"gorm.io/gorm"
)

// PostRepositoryDatabase implements the post port against MySQL.
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, post *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, post *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Where("id = ?", id).Delete(&post.Post{}).Error
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := config.DB.WithContext(ctx).Preload("Author").Preload("Group").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindPage(ctx context.Context, f postPort.Filter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	q := repo.filtered(ctx, f).
		Preload("Author").Preload("Group").
		Order("published DESC").
		Offset(offset).Limit(limit)
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, f postPort.Filter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, f).Model(&post.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// filtered applies one of the listing contexts. The following-feed context
// is a subquery over the follow edges so the feed stays a plain read with no
// fanout state.
func (repo *PostRepositoryDatabase) filtered(ctx context.Context, f postPort.Filter) *gorm.DB {
	q := config.DB.WithContext(ctx)
	switch {
	case f.GroupID != "":
		q = q.Where("group_id = ?", f.GroupID)
	case f.AuthorID != "":
		q = q.Where("author_id = ?", f.AuthorID)
	case f.FollowedBy != "":
		sub := config.DB.Model(&follower.Follow{}).
			Select("author_id").
			Where("user_id = ?", f.FollowedBy)
		q = q.Where("author_id IN (?)", sub)
	}
	return q
}
