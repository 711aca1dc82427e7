package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lzh-go/chirp/internal/domain"
	"github.com/lzh-go/chirp/internal/repository"
	repomocks "github.com/lzh-go/chirp/internal/repository/mocks"
	"github.com/lzh-go/chirp/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTimelineService_Get(t *testing.T) {
	t0 := time.UnixMilli(1700000000000)
	t1 := t0.Add(time.Minute)

	const (
		threshold = int64(5)
		pageSize  = 20
	)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.UserRepository,
			repository.TweetRepository, repository.InboxRepository)

		uid      int64
		pageSize int

		wantPage domain.TimelinePage
		wantErr  error
	}{
		{
			name: "推拉合并，名人的推文更新，排在前面",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.TweetRepository, repository.InboxRepository) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				userRepo.EXPECT().FindById(gomock.Any(), int64(7)).
					Return(domain.User{Id: 7, Username: "alice"}, nil)
				inboxRepo := repomocks.NewMockInboxRepository(ctrl)
				inboxRepo.EXPECT().Ids(gomock.Any(), int64(7)).
					Return([]int64{101}, nil)
				tweetRepo := repomocks.NewMockTweetRepository(ctrl)
				tweetRepo.EXPECT().FindByIds(gomock.Any(), []int64{101}).
					Return([]domain.Tweet{
						{Id: 101, SenderId: 1, Content: "p", Ctime: t0},
					}, nil)
				tweetRepo.EXPECT().FindCelebrityTimeline(gomock.Any(),
					int64(7), threshold, pageSize).
					Return([]domain.Tweet{
						{Id: 202, SenderId: 2, Content: "q", Ctime: t1},
					}, nil)
				return userRepo, tweetRepo, inboxRepo
			},
			uid:      7,
			pageSize: pageSize,
			wantPage: domain.TimelinePage{
				Tweets: []domain.Tweet{
					{Id: 202, SenderId: 2, Content: "q", Ctime: t1},
					{Id: 101, SenderId: 1, Content: "p", Ctime: t0},
				},
				Stats: domain.TimelineStats{
					CachedTweets:    1,
					CelebrityTweets: 1,
					TotalUnique:     2,
					Returned:        2,
				},
			},
		},
		{
			name: "两边都有同一条，只出现一次",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.TweetRepository, repository.InboxRepository) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				userRepo.EXPECT().FindById(gomock.Any(), int64(7)).
					Return(domain.User{Id: 7}, nil)
				inboxRepo := repomocks.NewMockInboxRepository(ctrl)
				// 重复投递导致收件箱里 101 出现了两次
				inboxRepo.EXPECT().Ids(gomock.Any(), int64(7)).
					Return([]int64{101, 101}, nil)
				tweetRepo := repomocks.NewMockTweetRepository(ctrl)
				tweetRepo.EXPECT().FindByIds(gomock.Any(), []int64{101, 101}).
					Return([]domain.Tweet{
						{Id: 101, SenderId: 1, Ctime: t1},
					}, nil)
				tweetRepo.EXPECT().FindCelebrityTimeline(gomock.Any(),
					int64(7), threshold, pageSize).
					Return([]domain.Tweet{
						{Id: 101, SenderId: 1, Ctime: t1},
						{Id: 100, SenderId: 2, Ctime: t0},
					}, nil)
				return userRepo, tweetRepo, inboxRepo
			},
			uid:      7,
			pageSize: pageSize,
			wantPage: domain.TimelinePage{
				Tweets: []domain.Tweet{
					{Id: 101, SenderId: 1, Ctime: t1},
					{Id: 100, SenderId: 2, Ctime: t0},
				},
				Stats: domain.TimelineStats{
					CachedTweets:    1,
					CelebrityTweets: 2,
					TotalUnique:     2,
					Returned:        2,
				},
			},
		},
		{
			name: "时间相同的按 id 倒序，超出页大小截断",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.TweetRepository, repository.InboxRepository) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				userRepo.EXPECT().FindById(gomock.Any(), int64(7)).
					Return(domain.User{Id: 7}, nil)
				inboxRepo := repomocks.NewMockInboxRepository(ctrl)
				inboxRepo.EXPECT().Ids(gomock.Any(), int64(7)).
					Return([]int64{11, 12}, nil)
				tweetRepo := repomocks.NewMockTweetRepository(ctrl)
				tweetRepo.EXPECT().FindByIds(gomock.Any(), []int64{11, 12}).
					Return([]domain.Tweet{
						{Id: 11, SenderId: 1, Ctime: t0},
						{Id: 12, SenderId: 1, Ctime: t0},
					}, nil)
				tweetRepo.EXPECT().FindCelebrityTimeline(gomock.Any(),
					int64(7), threshold, 2).
					Return([]domain.Tweet{
						{Id: 13, SenderId: 2, Ctime: t0},
					}, nil)
				return userRepo, tweetRepo, inboxRepo
			},
			uid:      7,
			pageSize: 2,
			wantPage: domain.TimelinePage{
				Tweets: []domain.Tweet{
					{Id: 13, SenderId: 2, Ctime: t0},
					{Id: 12, SenderId: 1, Ctime: t0},
				},
				Stats: domain.TimelineStats{
					CachedTweets:    2,
					CelebrityTweets: 1,
					TotalUnique:     3,
					Returned:        2,
				},
			},
		},
		{
			name: "收件箱挂了，降级成只有拉模型的结果",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.TweetRepository, repository.InboxRepository) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				userRepo.EXPECT().FindById(gomock.Any(), int64(7)).
					Return(domain.User{Id: 7}, nil)
				inboxRepo := repomocks.NewMockInboxRepository(ctrl)
				inboxRepo.EXPECT().Ids(gomock.Any(), int64(7)).
					Return(nil, errors.New("mock redis错误"))
				tweetRepo := repomocks.NewMockTweetRepository(ctrl)
				tweetRepo.EXPECT().FindCelebrityTimeline(gomock.Any(),
					int64(7), threshold, pageSize).
					Return([]domain.Tweet{
						{Id: 202, SenderId: 2, Ctime: t1},
					}, nil)
				return userRepo, tweetRepo, inboxRepo
			},
			uid:      7,
			pageSize: pageSize,
			wantPage: domain.TimelinePage{
				Tweets: []domain.Tweet{
					{Id: 202, SenderId: 2, Ctime: t1},
				},
				Stats: domain.TimelineStats{
					CachedTweets:    0,
					CelebrityTweets: 1,
					TotalUnique:     1,
					Returned:        1,
				},
			},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) (repository.UserRepository,
				repository.TweetRepository, repository.InboxRepository) {
				userRepo := repomocks.NewMockUserRepository(ctrl)
				userRepo.EXPECT().FindById(gomock.Any(), int64(404)).
					Return(domain.User{}, repository.ErrUserNotFound)
				inboxRepo := repomocks.NewMockInboxRepository(ctrl)
				tweetRepo := repomocks.NewMockTweetRepository(ctrl)
				return userRepo, tweetRepo, inboxRepo
			},
			uid:      404,
			pageSize: pageSize,
			wantErr:  repository.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			userRepo, tweetRepo, inboxRepo := tc.mock(ctrl)
			svc := NewTimelineService(userRepo, tweetRepo, inboxRepo,
				threshold, tc.pageSize, logger.NewNopLogger())
			page, err := svc.Get(context.Background(), tc.uid)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantPage, page)
		})
	}
}
