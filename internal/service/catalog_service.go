package service

import (
	"context"
	"time"

	"healthshop/internal/cache"
	"healthshop/internal/model"
	"healthshop/internal/repository"
)

const (
	categoriesCacheKey   = "catalog:categories"
	testimonialsCacheKey = "catalog:testimonials"
)

// CatalogService serves read-only reference data.
type CatalogService interface {
	Categories(ctx context.Context) ([]model.Category, error)
	Testimonials(ctx context.Context) ([]model.Testimonial, error)
	Invalidate(ctx context.Context)
}

type catalogService struct {
	categories   repository.CategoryRepository
	testimonials repository.TestimonialRepository
	cache        *cache.Client
	ttl          time.Duration
}

// NewCatalogService creates a catalog service that caches listings for ttl.
func NewCatalogService(categories repository.CategoryRepository, testimonials repository.TestimonialRepository, cache *cache.Client, ttl time.Duration) CatalogService {
	return &catalogService{
		categories:   categories,
		testimonials: testimonials,
		cache:        cache,
		ttl:          ttl,
	}
}

func (s *catalogService) Categories(ctx context.Context) ([]model.Category, error) {
	var cached []model.Category
	if s.cache.GetJSON(ctx, categoriesCacheKey, &cached) {
		return cached, nil
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, categoriesCacheKey, categories, s.ttl)
	return categories, nil
}

func (s *catalogService) Testimonials(ctx context.Context) ([]model.Testimonial, error) {
	var cached []model.Testimonial
	if s.cache.GetJSON(ctx, testimonialsCacheKey, &cached) {
		return cached, nil
	}
	testimonials, err := s.testimonials.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, testimonialsCacheKey, testimonials, s.ttl)
	return testimonials, nil
}

// Invalidate drops cached listings after reference data is reseeded.
func (s *catalogService) Invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, categoriesCacheKey)
	_ = s.cache.Delete(ctx, testimonialsCacheKey)
}
