package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/lzh-go/chirp/internal/domain"
	"github.com/lzh-go/chirp/internal/repository/dao"
)

type TweetRepository interface {
	Create(ctx context.Context, t domain.Tweet) (domain.Tweet, error)
	// FindByIds 缺失的 id 直接略过
	FindByIds(ctx context.Context, ids []int64) ([]domain.Tweet, error)
	FindCelebrityTimeline(ctx context.Context, uid int64, threshold int64, limit int) ([]domain.Tweet, error)
}

type tweetRepository struct {
	dao dao.TweetDAO
}

func NewTweetRepository(d dao.TweetDAO) TweetRepository {
	return &tweetRepository{
		dao: d,
	}
}

func (repo *tweetRepository) Create(ctx context.Context, t domain.Tweet) (domain.Tweet, error) {
	entity, err := repo.dao.Insert(ctx, dao.Tweet{
		SenderId: t.SenderId,
		Content:  t.Content,
	})
	if err != nil {
		return domain.Tweet{}, err
	}
	return repo.toDomain(entity), nil
}

func (repo *tweetRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Tweet, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	tweets, err := repo.dao.GetByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(tweets, func(idx int, src dao.Tweet) domain.Tweet {
		return repo.toDomain(src)
	}), nil
}

func (repo *tweetRepository) FindCelebrityTimeline(ctx context.Context,
	uid int64, threshold int64, limit int) ([]domain.Tweet, error) {
	tweets, err := repo.dao.GetCelebrityTimeline(ctx, uid, threshold, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(tweets, func(idx int, src dao.Tweet) domain.Tweet {
		return repo.toDomain(src)
	}), nil
}

func (repo *tweetRepository) toDomain(t dao.Tweet) domain.Tweet {
	return domain.Tweet{
		Id:       t.Id,
		SenderId: t.SenderId,
		Content:  t.Content,
		Ctime:    time.UnixMilli(t.Ctime),
	}
}
