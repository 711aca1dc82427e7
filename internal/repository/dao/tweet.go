package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type TweetDAO interface {
	Insert(ctx context.Context, t Tweet) (Tweet, error)
	GetByIds(ctx context.Context, ids []int64) ([]Tweet, error)
	// GetCelebrityTimeline 拉模型：我关注的人里面，粉丝数达到阈值的那些人发的推文
	// 粉丝数是每次查询的时候现算的，跨过阈值不需要任何迁移动作
	GetCelebrityTimeline(ctx context.Context, uid int64, threshold int64, limit int) ([]Tweet, error)
}

// Tweet 只插入，不更新也不删除
type Tweet struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	SenderId int64  `gorm:"index"`
	Content  string `gorm:"type:varchar(1024)"`
	Ctime    int64  `gorm:"index"`
	Utime    int64
}

type GORMTweetDAO struct {
	db *gorm.DB
}

func NewGORMTweetDAO(db *gorm.DB) TweetDAO {
	return &GORMTweetDAO{
		db: db,
	}
}

func (dao *GORMTweetDAO) Insert(ctx context.Context, t Tweet) (Tweet, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := dao.db.WithContext(ctx).Create(&t).Error
	return t, err
}

func (dao *GORMTweetDAO) GetByIds(ctx context.Context, ids []int64) ([]Tweet, error) {
	var res []Tweet
	// 查不到的 id 直接略过，不算错误
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (dao *GORMTweetDAO) GetCelebrityTimeline(ctx context.Context,
	uid int64, threshold int64, limit int) ([]Tweet, error) {
	var res []Tweet
	// ctime 相同的时候用 id 兜底，保证同一个查询的顺序是确定的
	err := dao.db.WithContext(ctx).
		Table("tweets AS t").
		Select("t.*").
		Joins("JOIN follow_relations AS f ON f.followee = t.sender_id").
		Where("f.follower = ?", uid).
		Where("(SELECT COUNT(*) FROM follow_relations AS f2 WHERE f2.followee = t.sender_id) >= ?",
			threshold).
		Order("t.ctime DESC, t.id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}
