package service

import (
	"context"

	"github.com/lzh-go/chirp/internal/domain"
	tweetevt "github.com/lzh-go/chirp/internal/events/tweet"
	"github.com/lzh-go/chirp/internal/repository"
	"github.com/lzh-go/chirp/pkg/logger"
)

type TweetService interface {
	Post(ctx context.Context, senderId int64, content string) (domain.PostResult, error)
}

type tweetService struct {
	repo       repository.TweetRepository
	followRepo repository.FollowRepository
	producer   tweetevt.Producer
	// 粉丝数达到这个数就算名人，走拉模型
	threshold int64
	l         logger.LoggerV1
}

func NewTweetService(repo repository.TweetRepository,
	followRepo repository.FollowRepository,
	producer tweetevt.Producer,
	threshold int64,
	l logger.LoggerV1) TweetService {
	return &tweetService{
		repo:       repo,
		followRepo: followRepo,
		producer:   producer,
		threshold:  threshold,
		l:          l,
	}
}

// Post 先落库再发消息，保证消费者拿到事件的时候库里面一定有这条推文
// 粉丝数和粉丝列表是两次查询，中间关系变了就变了，接受这个差异
func (svc *tweetService) Post(ctx context.Context, senderId int64, content string) (domain.PostResult, error) {
	tweet, err := svc.repo.Create(ctx, domain.Tweet{
		SenderId: senderId,
		Content:  content,
	})
	if err != nil {
		return domain.PostResult{}, err
	}
	cnt, err := svc.followRepo.CntFollower(ctx, senderId)
	if err != nil {
		// 推文已经在库里了，这里失败只能整个请求报错
		return domain.PostResult{}, err
	}
	if cnt >= svc.threshold {
		// 名人不扩散，读的时候现查
		return domain.PostResult{
			Tweet:       tweet,
			IsCelebrity: true,
			FollowerCnt: cnt,
		}, nil
	}
	ids, err := svc.followRepo.FollowerIds(ctx, senderId)
	if err != nil {
		return domain.PostResult{}, err
	}
	err = svc.producer.ProduceFanoutEvent(ctx, tweetevt.FanoutEvent{
		TweetId:     tweet.Id,
		FollowerIds: ids,
	})
	if err != nil {
		svc.l.Error("发送扩散事件失败",
			logger.Error(err),
			logger.Int64("tweet_id", tweet.Id))
		return domain.PostResult{}, err
	}
	return domain.PostResult{
		Tweet:       tweet,
		IsCelebrity: false,
		FollowerCnt: cnt,
	}, nil
}
