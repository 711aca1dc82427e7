package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type InboxCache interface {
	// Push 把推文 id 推到收件箱头部，并且裁掉超出容量的部分
	Push(ctx context.Context, uid int64, tweetId int64) error
	Ids(ctx context.Context, uid int64) ([]int64, error)
}

type RedisInboxCache struct {
	client redis.Cmdable
	// 收件箱容量，超过的直接裁掉
	size int64
}

func NewRedisInboxCache(client redis.Cmdable, size int64) InboxCache {
	return &RedisInboxCache{
		client: client,
		size:   size,
	}
}

func (c *RedisInboxCache) Push(ctx context.Context, uid int64, tweetId int64) error {
	key := c.key(uid)
	// LPUSH + LTRIM 放在一个 pipeline 里
	// 重复投递会把同一个 id 再塞一遍，读的那边按 id 去重，所以这里无所谓
	pip := c.client.Pipeline()
	pip.LPush(ctx, key, tweetId)
	pip.LTrim(ctx, key, 0, c.size-1)
	_, err := pip.Exec(ctx)
	return err
}

func (c *RedisInboxCache) Ids(ctx context.Context, uid int64) ([]int64, error) {
	vals, err := c.client.LRange(ctx, c.key(uid), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(vals))
	for _, val := range vals {
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *RedisInboxCache) key(uid int64) string {
	return fmt.Sprintf("feed:inbox:%d", uid)
}
