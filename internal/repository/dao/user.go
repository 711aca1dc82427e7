package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type UserDAO interface {
	Insert(ctx context.Context, u User) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
}

type User struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"unique;type:varchar(128)"`
	Ctime    int64
	Utime    int64
}

type GORMUserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (dao *GORMUserDAO) Insert(ctx context.Context, u User) (User, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := dao.db.WithContext(ctx).Create(&u).Error
	return u, err
}

func (dao *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return u, err
}
