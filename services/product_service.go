package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"furniture-shop/models"
	"furniture-shop/repositories"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	productCacheKey = "products_list"
	productCacheTTL = 5 * time.Minute

	DefaultFeaturedLimit = 4
	maxFeaturedLimit     = 24
)

// ProductService serves the catalog. The full product list is cached in
// Redis when a client is configured; every admin write drops the cache.
type ProductService struct {
	products ProductStore
	cache    *redis.Client
	images   ImageUploader
	logger   *zap.Logger
}

func NewProductService(products ProductStore, cache *redis.Client, images ImageUploader, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, cache: cache, images: images, logger: logger}
}

func (s *ProductService) all(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productCacheKey).Bytes()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal(cached, &products); err == nil {
				return products, nil
			}
			s.logger.Warn("discarding unreadable product cache", zap.Error(err))
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("product cache read failed", zap.Error(err))
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("products.List: %w", err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, productCacheKey, raw, productCacheTTL).Err(); err != nil {
				s.logger.Warn("product cache write failed", zap.Error(err))
			}
		}
	}
	return products, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, productCacheKey).Err(); err != nil {
		s.logger.Warn("product cache invalidation failed", zap.Error(err))
	}
}

// List returns the catalog newest first, narrowed by f.
func (s *ProductService) List(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	products, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return models.FilterProducts(products, f), nil
}

func (s *ProductService) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = DefaultFeaturedLimit
	}
	if limit > maxFeaturedLimit {
		limit = maxFeaturedLimit
	}
	products, err := s.products.Featured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("products.Featured: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("products.GetByID: %w", err)
	}
	return p, nil
}

func (s *ProductService) Categories() []models.Category {
	return models.Categories
}

func (s *ProductService) SeaterTypes() []models.SeaterType {
	return models.SeaterTypes
}

// ParsePrice accepts a non-negative amount up to models.MaxPrice with at most
// two decimal places.
func ParsePrice(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, fieldError("price", "must be a number")
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fieldError("price", "must not be negative")
	}
	if !d.Equal(d.Round(2)) {
		return decimal.Decimal{}, fieldError("price", "must have at most two decimal places")
	}
	if d.GreaterThan(models.MaxPrice) {
		return decimal.Decimal{}, fieldError("price", "must not exceed "+models.FormatPrice(models.MaxPrice))
	}
	return d, nil
}

func checkProduct(p models.Product) error {
	fields := map[string]string{}
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = "is required"
	}
	if !p.Category.Valid() {
		fields["category"] = "is not a known category"
	}
	if !p.SeaterType.Valid() {
		fields["seater_type"] = "is not a known seater type"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	price, err := ParsePrice(req.Price)
	if err != nil {
		return models.Product{}, err
	}

	seater := models.SeaterType(req.SeaterType)
	if seater == "" {
		seater = models.SeaterNotApplicable
	}

	p := models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       price,
		Category:    models.Category(req.Category),
		SeaterType:  seater,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
	}
	if err := checkProduct(p); err != nil {
		return models.Product{}, err
	}

	created, err := s.products.Create(ctx, p)
	if err != nil {
		return models.Product{}, fmt.Errorf("products.Create: %w", err)
	}
	s.invalidate(ctx)

	s.logger.Info("product created", zap.String("product_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, req models.UpdateProductRequest) (models.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		price, err := ParsePrice(*req.Price)
		if err != nil {
			return models.Product{}, err
		}
		p.Price = price
	}
	if req.Category != nil {
		p.Category = models.Category(*req.Category)
	}
	if req.SeaterType != nil {
		p.SeaterType = models.SeaterType(*req.SeaterType)
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if err := checkProduct(p); err != nil {
		return models.Product{}, err
	}

	if err := s.products.Update(ctx, p); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, fmt.Errorf("products.Update: %w", err)
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	err := s.products.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("products.Delete: %w", err)
	}
	s.invalidate(ctx)

	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

// UploadImage stores the photo and points the product at it.
func (s *ProductService) UploadImage(ctx context.Context, id string, fileHeader *multipart.FileHeader) (models.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	url, err := s.images.Upload(ctx, fileHeader)
	if err != nil {
		return models.Product{}, err
	}

	p.ImageURL = url
	if err := s.products.Update(ctx, p); err != nil {
		return models.Product{}, fmt.Errorf("products.Update: %w", err)
	}
	s.invalidate(ctx)
	return p, nil
}
