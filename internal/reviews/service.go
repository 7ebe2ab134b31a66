// Package reviews serves the review feed and fans newly inserted
// reviews out to live subscribers, mirroring a hosted store's realtime
// INSERT channel with Redis pub/sub.
package reviews

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/razoraze123/gnamgnam/internal/catalog"
	"github.com/razoraze123/gnamgnam/internal/domain"
)

const channelName = "reviews:new"

// Stats summarizes the feed for the reviews page.
type Stats struct {
	Average   float64     `json:"moyenne"`
	Count     int         `json:"nombre"`
	Histogram map[int]int `json:"repartition"` // star -> count
}

type Service struct {
	repo  catalog.Repository
	redis *redis.Client
	log   *logrus.Logger
}

func NewService(repo catalog.Repository, redisClient *redis.Client, log *logrus.Logger) *Service {
	return &Service{repo: repo, redis: redisClient, log: log}
}

func (s *Service) List(ctx context.Context, limit int) ([]domain.Review, error) {
	return s.repo.ListReviews(ctx, limit)
}

// Add inserts the review and announces it to subscribers. Publish
// failure is logged only: the review is already stored.
func (s *Service) Add(ctx context.Context, review *domain.Review) error {
	if err := s.repo.InsertReview(ctx, review); err != nil {
		return err
	}

	payload, err := json.Marshal(review)
	if err != nil {
		return fmt.Errorf("marshal review: %w", err)
	}
	if err := s.redis.Publish(ctx, channelName, payload).Err(); err != nil {
		s.log.WithError(err).Warn("review publish failed")
	}
	return nil
}

func (s *Service) StatsFor(reviews []domain.Review) Stats {
	stats := Stats{
		Count:     len(reviews),
		Histogram: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(reviews) == 0 {
		return stats
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			stats.Histogram[r.Rating]++
		}
	}
	stats.Average = float64(sum) / float64(len(reviews))
	return stats
}

// Subscription delivers newly inserted reviews in arrival order until
// closed. One subscription per consuming page view.
type Subscription struct {
	C      <-chan domain.Review
	pubsub *redis.PubSub
	cancel context.CancelFunc
}

func (s *Subscription) Close() error {
	s.cancel()
	return s.pubsub.Close()
}

// Subscribe opens the live review channel. The returned subscription
// must be closed when the consuming view goes away.
func (s *Service) Subscribe(ctx context.Context) (*Subscription, error) {
	pubsub := s.redis.Subscribe(ctx, channelName)

	// Force the subscription to be established before we return.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("subscribe to reviews: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	out := make(chan domain.Review)

	go func() {
		defer close(out)
		ch := pubsub.Channel()
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var review domain.Review
				if err := json.Unmarshal([]byte(msg.Payload), &review); err != nil {
					s.log.WithError(err).Warn("malformed review notification dropped")
					continue
				}
				select {
				case out <- review:
				case <-subCtx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{C: out, pubsub: pubsub, cancel: cancel}, nil
}
