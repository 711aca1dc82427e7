package tweet

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/lzh-go/chirp/internal/repository"
	"github.com/lzh-go/chirp/pkg/logger"
	"github.com/lzh-go/chirp/pkg/saramax"
)

type FanoutEventConsumer struct {
	client sarama.Client
	repo   repository.InboxRepository
	l      logger.LoggerV1
}

func NewFanoutEventConsumer(client sarama.Client,
	repo repository.InboxRepository,
	l logger.LoggerV1) *FanoutEventConsumer {
	return &FanoutEventConsumer{
		client: client,
		repo:   repo,
		l:      l,
	}
}

func (c *FanoutEventConsumer) Start() error {
	cg, err := sarama.NewConsumerGroupFromClient("tweet_fanout", c.client)
	if err != nil {
		return err
	}
	go func() {
		ctx := context.Background()
		// Consume 在重平衡或者处理失败的时候会返回，
		// 要在循环里面重新加入，从未提交的位置接着消费
		for {
			err := cg.Consume(ctx,
				[]string{topicTweetFanout},
				saramax.NewHandler[FanoutEvent](c.l, c.Consume))
			if err != nil {
				c.l.Error("退出了消费循环异常", logger.Error(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
	return err
}

// Consume 把推文 id 写进每个粉丝的收件箱
// 中途失败不回滚已经写进去的部分，靠重新投递补齐，所以必须是幂等安全的
// Push 本身允许重复 id，读路径会按 id 去重
func (c *FanoutEventConsumer) Consume(msg *sarama.ConsumerMessage, evt FanoutEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	for _, uid := range evt.FollowerIds {
		err := c.repo.Append(ctx, uid, evt.TweetId)
		if err != nil {
			c.l.Error("写入收件箱失败",
				logger.Error(err),
				logger.Int64("uid", uid),
				logger.Int64("tweet_id", evt.TweetId))
			return err
		}
	}
	return nil
}
