package service

import (
	"context"

	"github.com/lzh-go/chirp/internal/domain"
	"github.com/lzh-go/chirp/internal/repository"
)

type UserService interface {
	Signup(ctx context.Context, username string) (domain.User, error)
	// Follow 加一条关注关系
	// 关注数据是别的入口灌进来的，时间线那边只读计数和列表
	Follow(ctx context.Context, follower, followee int64) error
}

type userService struct {
	repo       repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(repo repository.UserRepository,
	followRepo repository.FollowRepository) UserService {
	return &userService{
		repo:       repo,
		followRepo: followRepo,
	}
}

func (svc *userService) Signup(ctx context.Context, username string) (domain.User, error) {
	return svc.repo.Create(ctx, domain.User{
		Username: username,
	})
}

func (svc *userService) Follow(ctx context.Context, follower, followee int64) error {
	// 被关注的人得存在，不然时间线查出来就是个空号
	_, err := svc.repo.FindById(ctx, followee)
	if err != nil {
		return err
	}
	return svc.followRepo.AddFollow(ctx, follower, followee)
}
