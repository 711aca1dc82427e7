package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lzh-go/chirp/internal/domain"
	"github.com/lzh-go/chirp/internal/repository"
	repomocks "github.com/lzh-go/chirp/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserService_Signup(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.UserRepository, repository.FollowRepository)

		username string

		wantUser domain.User
		wantErr  error
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, repository.FollowRepository) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.User{Username: "alice"}).
					Return(domain.User{Id: 1, Username: "alice"}, nil)
				return repo, repomocks.NewMockFollowRepository(ctrl)
			},
			username: "alice",
			wantUser: domain.User{Id: 1, Username: "alice"},
		},
		{
			name: "落库失败",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, repository.FollowRepository) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.User{Username: "alice"}).
					Return(domain.User{}, errors.New("mock db 错误"))
				return repo, repomocks.NewMockFollowRepository(ctrl)
			},
			username: "alice",
			wantErr:  errors.New("mock db 错误"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, followRepo := tc.mock(ctrl)
			svc := NewUserService(repo, followRepo)
			u, err := svc.Signup(context.Background(), tc.username)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestUserService_Follow(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.UserRepository, repository.FollowRepository)

		follower int64
		followee int64

		wantErr error
	}{
		{
			name: "关注成功",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, repository.FollowRepository) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.User{Id: 1, Username: "alice"}, nil)
				followRepo := repomocks.NewMockFollowRepository(ctrl)
				followRepo.EXPECT().AddFollow(gomock.Any(), int64(2), int64(1)).
					Return(nil)
				return repo, followRepo
			},
			follower: 2,
			followee: 1,
		},
		{
			name: "被关注的用户不存在",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, repository.FollowRepository) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(404)).
					Return(domain.User{}, repository.ErrUserNotFound)
				// 用户都没有，不会写关系
				return repo, repomocks.NewMockFollowRepository(ctrl)
			},
			follower: 2,
			followee: 404,
			wantErr:  repository.ErrUserNotFound,
		},
		{
			name: "写关系失败",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository, repository.FollowRepository) {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.User{Id: 1, Username: "alice"}, nil)
				followRepo := repomocks.NewMockFollowRepository(ctrl)
				followRepo.EXPECT().AddFollow(gomock.Any(), int64(2), int64(1)).
					Return(errors.New("mock db 错误"))
				return repo, followRepo
			},
			follower: 2,
			followee: 1,
			wantErr:  errors.New("mock db 错误"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, followRepo := tc.mock(ctrl)
			svc := NewUserService(repo, followRepo)
			err := svc.Follow(context.Background(), tc.follower, tc.followee)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
