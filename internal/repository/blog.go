package repository

import (
	"context"

	"github.com/elicharlese/Dropics-sub001/internal/model"
	"gorm.io/gorm"
)

type BlogRepository interface {
	ListPublished(ctx context.Context) ([]*model.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

type blogRepoImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepoImpl{
		db: db,
	}
}

func (r *blogRepoImpl) ListPublished(ctx context.Context) ([]*model.BlogPost, error) {
	var posts []*model.BlogPost
	err := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL").
		Order("published_at desc").
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *blogRepoImpl) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ? AND published_at IS NOT NULL", slug).
		First(&post).Error

	if err != nil {
		return nil, err
	}

	return &post, nil
}
