package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/elicharlese/Dropics-sub001/internal/dto"
	"github.com/elicharlese/Dropics-sub001/internal/model"
	"github.com/elicharlese/Dropics-sub001/internal/repository"
	"gorm.io/gorm"
)

// ContentService serves the blog and the contact form.
type ContentService interface {
	ListPosts(ctx context.Context) ([]*model.BlogPost, error)
	GetPost(ctx context.Context, slug string) (*model.BlogPost, error)
	SubmitContact(ctx context.Context, req *dto.ContactRequest) error
}

type contentServiceImpl struct {
	blogRepo    repository.BlogRepository
	contactRepo repository.ContactRepository
}

func NewContentService(blogRepo repository.BlogRepository, contactRepo repository.ContactRepository) ContentService {
	return &contentServiceImpl{
		blogRepo:    blogRepo,
		contactRepo: contactRepo,
	}
}

func (s *contentServiceImpl) ListPosts(ctx context.Context) ([]*model.BlogPost, error) {
	posts, err := s.blogRepo.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return posts, nil
}

func (s *contentServiceImpl) GetPost(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "post", ID: slug}
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return post, nil
}

func (s *contentServiceImpl) SubmitContact(ctx context.Context, req *dto.ContactRequest) error {
	message := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := s.contactRepo.Create(ctx, message); err != nil {
		return fmt.Errorf("store contact message: %w", err)
	}
	return nil
}
