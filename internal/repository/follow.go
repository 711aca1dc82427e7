package repository

import (
	"context"

	"github.com/lzh-go/chirp/internal/repository/dao"
)

type FollowRepository interface {
	AddFollow(ctx context.Context, follower, followee int64) error
	// CntFollower 写路径每次现算，不缓存，不然跨过阈值的时候要处理失效
	CntFollower(ctx context.Context, followee int64) (int64, error)
	FollowerIds(ctx context.Context, followee int64) ([]int64, error)
}

type followRepository struct {
	dao dao.FollowDAO
}

func NewFollowRepository(d dao.FollowDAO) FollowRepository {
	return &followRepository{
		dao: d,
	}
}

func (repo *followRepository) AddFollow(ctx context.Context, follower, followee int64) error {
	return repo.dao.Insert(ctx, dao.FollowRelation{
		Follower: follower,
		Followee: followee,
	})
}

func (repo *followRepository) CntFollower(ctx context.Context, followee int64) (int64, error) {
	return repo.dao.CntFollower(ctx, followee)
}

func (repo *followRepository) FollowerIds(ctx context.Context, followee int64) ([]int64, error) {
	return repo.dao.FollowerIds(ctx, followee)
}
