package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"quizhub/internal/domain"
	"quizhub/internal/quiz"
)

// QuizCache is a read-through cache over another quiz.Repository. Quizzes
// are written once and never mutated afterward, so cached copies can only go
// stale by expiring, never by being wrong.
type QuizCache struct {
	client *redis.Client
	inner  quiz.Repository
	ttl    time.Duration
	sf     singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewQuizCache(client *redis.Client, inner quiz.Repository, ttl time.Duration) *QuizCache {
	return &QuizCache{
		client: client,
		inner:  inner,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Save writes through to the backing store and primes the cache.
func (c *QuizCache) Save(ctx context.Context, q domain.Quiz) (domain.Quiz, error) {
	saved, err := c.inner.Save(ctx, q)
	if err != nil {
		return domain.Quiz{}, err
	}
	c.put(ctx, saved)
	return saved, nil
}

func (c *QuizCache) ByID(ctx context.Context, id string) (domain.Quiz, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == nil {
		var q domain.Quiz
		if err := json.Unmarshal(raw, &q); err == nil {
			return q, nil
		}
	}

	result, err, _ := c.sf.Do(id, func() (interface{}, error) {
		// Re-check in case another goroutine filled the cache.
		raw, err := c.client.Get(ctx, c.key(id)).Bytes()
		if err == nil {
			var q domain.Quiz
			if err := json.Unmarshal(raw, &q); err == nil {
				return q, nil
			}
		}

		q, err := c.inner.ByID(ctx, id)
		if err != nil {
			return domain.Quiz{}, err
		}
		c.put(ctx, q)
		return q, nil
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return result.(domain.Quiz), nil
}

// put is best-effort; a cache write failure never fails the request.
func (c *QuizCache) put(ctx context.Context, q domain.Quiz) {
	raw, err := json.Marshal(q)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(q.ID), raw, c.ttlWithJitter()).Err()
}

func (c *QuizCache) key(id string) string {
	return "quiz:" + id
}

func (c *QuizCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations; rnd is shared across
	// concurrent Save and fill paths
	jitterMax := int64(c.ttl) / 10
	c.rndMu.Lock()
	defer c.rndMu.Unlock()
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
