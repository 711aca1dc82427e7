package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type FollowDAO interface {
	Insert(ctx context.Context, f FollowRelation) error
	CntFollower(ctx context.Context, followee int64) (int64, error)
	FollowerIds(ctx context.Context, followee int64) ([]int64, error)
}

type FollowRelation struct {
	Id int64 `gorm:"primaryKey;autoIncrement"`
	// 同一对关系只存一条
	Follower int64 `gorm:"uniqueIndex:idx_follower_followee"`
	Followee int64 `gorm:"uniqueIndex:idx_follower_followee;index"`
	Ctime    int64
	Utime    int64
}

type GORMFollowDAO struct {
	db *gorm.DB
}

func NewGORMFollowDAO(db *gorm.DB) FollowDAO {
	return &GORMFollowDAO{
		db: db,
	}
}

func (dao *GORMFollowDAO) Insert(ctx context.Context, f FollowRelation) error {
	now := time.Now().UnixMilli()
	f.Ctime = now
	f.Utime = now
	return dao.db.WithContext(ctx).Create(&f).Error
}

func (dao *GORMFollowDAO) CntFollower(ctx context.Context, followee int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&FollowRelation{}).
		Where("followee = ?", followee).Count(&cnt).Error
	return cnt, err
}

func (dao *GORMFollowDAO) FollowerIds(ctx context.Context, followee int64) ([]int64, error) {
	var ids []int64
	err := dao.db.WithContext(ctx).Model(&FollowRelation{}).
		Where("followee = ?", followee).Pluck("follower", &ids).Error
	return ids, err
}
