package repositories

import (
	"context"
	"strconv"
	"time"

	"github.com/maxaizer/job-platform/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

type userByIDRepository interface {
	GetByID(ctx context.Context, id int) (*entities.User, error)
}

// CachedUsers is a read-through cache over user lookups, used on the hot
// bearer-authentication path. Users are append-only and never modified, so
// a cached row cannot go stale; only positive lookups are cached.
type CachedUsers struct {
	repo  userByIDRepository
	cache *gocache.Cache
}

func NewCachedUsers(repo userByIDRepository) *CachedUsers {
	return &CachedUsers{repo: repo, cache: gocache.New(10*time.Minute, 20*time.Minute)}
}

func (c *CachedUsers) GetByID(ctx context.Context, id int) (*entities.User, error) {
	if value, found := c.cache.Get(cacheKey(id)); found {
		user := value.(entities.User)
		return &user, nil
	}

	user, err := c.repo.GetByID(ctx, id)
	if user != nil && err == nil {
		c.cache.Set(cacheKey(id), *user, gocache.DefaultExpiration)
	}

	return user, err
}

func cacheKey(id int) string {
	return "user:" + strconv.Itoa(id)
}
