package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

// ProductService fronts the repository's product reads with a short
// in-process cache. Singleflight collapses concurrent misses into one
// store query so a burst of shop-page loads costs a single round trip.
type ProductService struct {
	repo Repository
	log  *logrus.Logger
	sfg  singleflight.Group

	mu       sync.RWMutex
	cached   []domain.Product
	cachedAt time.Time
	ttl      time.Duration
}

func NewProductService(repo Repository, log *logrus.Logger) *ProductService {
	return &ProductService{
		repo: repo,
		log:  log,
		ttl:  30 * time.Second,
	}
}

func (s *ProductService) List(ctx context.Context, limit int) ([]domain.Product, error) {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.cachedAt) < s.ttl {
		products := s.cached
		s.mu.RUnlock()
		return clip(products, limit), nil
	}
	s.mu.RUnlock()

	v, err, _ := s.sfg.Do("products", func() (interface{}, error) {
		products, err := s.repo.ListProducts(ctx, 0)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.cached = products
		s.cachedAt = time.Now()
		s.mu.Unlock()

		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return clip(v.([]domain.Product), limit), nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func clip(products []domain.Product, limit int) []domain.Product {
	if limit > 0 && limit < len(products) {
		return products[:limit]
	}
	return products
}
