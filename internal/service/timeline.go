package service

import (
	"context"
	"sort"

	"github.com/lzh-go/chirp/internal/domain"
	"github.com/lzh-go/chirp/internal/repository"
	"github.com/lzh-go/chirp/pkg/logger"
	"golang.org/x/sync/errgroup"
)

var ErrUserNotFound = repository.ErrUserNotFound

type TimelineService interface {
	Get(ctx context.Context, uid int64) (domain.TimelinePage, error)
}

type timelineService struct {
	userRepo  repository.UserRepository
	tweetRepo repository.TweetRepository
	inboxRepo repository.InboxRepository
	threshold int64
	pageSize  int
	l         logger.LoggerV1
}

func NewTimelineService(userRepo repository.UserRepository,
	tweetRepo repository.TweetRepository,
	inboxRepo repository.InboxRepository,
	threshold int64,
	pageSize int,
	l logger.LoggerV1) TimelineService {
	return &timelineService{
		userRepo:  userRepo,
		tweetRepo: tweetRepo,
		inboxRepo: inboxRepo,
		threshold: threshold,
		pageSize:  pageSize,
		l:         l,
	}
}

// Get 收件箱查一下，名人推文现查一下，合并去重排序，返回首页
func (svc *timelineService) Get(ctx context.Context, uid int64) (domain.TimelinePage, error) {
	_, err := svc.userRepo.FindById(ctx, uid)
	if err != nil {
		return domain.TimelinePage{}, err
	}
	var (
		eg     errgroup.Group
		cached []domain.Tweet
		celebs []domain.Tweet
	)
	eg.Go(func() error {
		ids, err := svc.inboxRepo.Ids(ctx, uid)
		if err != nil {
			// 收件箱挂了就降级成只有拉模型的结果，不能让整个请求失败
			svc.l.Warn("读收件箱失败，降级为拉模型",
				logger.Error(err),
				logger.Int64("uid", uid))
			return nil
		}
		cached, err = svc.tweetRepo.FindByIds(ctx, ids)
		return err
	})
	eg.Go(func() error {
		var err error
		celebs, err = svc.tweetRepo.FindCelebrityTimeline(ctx, uid, svc.threshold, svc.pageSize)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.TimelinePage{}, err
	}

	// 两边可能出现同一条推文，按 id 去重，推文不可变，留哪份都一样
	seen := make(map[int64]struct{}, len(cached)+len(celebs))
	merged := make([]domain.Tweet, 0, len(cached)+len(celebs))
	for _, t := range append(cached, celebs...) {
		if _, ok := seen[t.Id]; ok {
			continue
		}
		seen[t.Id] = struct{}{}
		merged = append(merged, t)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Ctime.Equal(merged[j].Ctime) {
			// 时间一样的时候保证顺序确定
			return merged[i].Id > merged[j].Id
		}
		return merged[i].Ctime.After(merged[j].Ctime)
	})
	totalUnique := len(merged)
	merged = merged[:min(svc.pageSize, len(merged))]
	return domain.TimelinePage{
		Tweets: merged,
		Stats: domain.TimelineStats{
			CachedTweets:    len(cached),
			CelebrityTweets: len(celebs),
			TotalUnique:     totalUnique,
			Returned:        len(merged),
		},
	}, nil
}
