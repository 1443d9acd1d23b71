package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/elicharlese/Dropics-sub001/internal/model"
	"github.com/elicharlese/Dropics-sub001/internal/repository"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const productCacheTTL = 5 * time.Minute

type CatalogService interface {
	ListProducts(ctx context.Context, category string) ([]*model.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	redisClient *redis.Client // nil when caching is disabled
}

func NewCatalogService(productRepo repository.ProductRepository, redisClient *redis.Client) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		redisClient: redisClient,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, category string) ([]*model.Product, error) {
	products, err := s.productRepo.ListActive(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *catalogServiceImpl) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	cacheKey := "product:slug:" + slug

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var product model.Product
			if err := json.Unmarshal([]byte(cached), &product); err == nil {
				return &product, nil
			}
		}
	}

	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "product", ID: slug}
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !product.Active {
		return nil, &NotFoundError{Entity: "product", ID: slug}
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}

	return product, nil
}
