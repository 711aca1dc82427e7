package repository

import (
	"context"
	"time"

	"github.com/lzh-go/chirp/internal/domain"
	"github.com/lzh-go/chirp/internal/repository/dao"
)

var ErrUserNotFound = dao.ErrRecordNotFound

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{
		dao: d,
	}
}

func (repo *userRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	entity, err := repo.dao.Insert(ctx, dao.User{
		Username: u.Username,
	})
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(entity), nil
}

func (repo *userRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return repo.toDomain(u), nil
}

func (repo *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		Username: u.Username,
		Ctime:    time.UnixMilli(u.Ctime),
	}
}
