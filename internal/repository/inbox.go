package repository

import (
	"context"

	"github.com/lzh-go/chirp/internal/repository/cache"
)

// InboxRepository 收件箱只是一个优化，不是 source of truth
type InboxRepository interface {
	Append(ctx context.Context, uid int64, tweetId int64) error
	Ids(ctx context.Context, uid int64) ([]int64, error)
}

type cachedInboxRepository struct {
	cache cache.InboxCache
}

func NewCachedInboxRepository(c cache.InboxCache) InboxRepository {
	return &cachedInboxRepository{
		cache: c,
	}
}

func (repo *cachedInboxRepository) Append(ctx context.Context, uid int64, tweetId int64) error {
	return repo.cache.Push(ctx, uid, tweetId)
}

func (repo *cachedInboxRepository) Ids(ctx context.Context, uid int64) ([]int64, error) {
	return repo.cache.Ids(ctx, uid)
}
