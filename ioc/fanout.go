package ioc

import (
	tweetevt "github.com/lzh-go/chirp/internal/events/tweet"
	"github.com/lzh-go/chirp/internal/repository"
	"github.com/lzh-go/chirp/internal/repository/cache"
	"github.com/lzh-go/chirp/internal/service"
	"github.com/lzh-go/chirp/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

// fanoutConfig 推拉模型的三个口子：阈值、收件箱容量、页大小
// 除了这三个没有别的可调的
type fanoutConfig struct {
	Threshold int64 `yaml:"threshold"`
	InboxSize int64 `yaml:"inboxSize"`
	PageSize  int   `yaml:"pageSize"`
}

func loadFanoutConfig() fanoutConfig {
	cfg := fanoutConfig{
		Threshold: 5,
		InboxSize: 20,
		PageSize:  20,
	}
	err := viper.UnmarshalKey("fanout", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitInboxCache(client redis.Cmdable) cache.InboxCache {
	cfg := loadFanoutConfig()
	return cache.NewRedisInboxCache(client, cfg.InboxSize)
}

func InitTweetService(repo repository.TweetRepository,
	followRepo repository.FollowRepository,
	producer tweetevt.Producer,
	l logger.LoggerV1) service.TweetService {
	cfg := loadFanoutConfig()
	return service.NewTweetService(repo, followRepo, producer, cfg.Threshold, l)
}

func InitTimelineService(userRepo repository.UserRepository,
	tweetRepo repository.TweetRepository,
	inboxRepo repository.InboxRepository,
	l logger.LoggerV1) service.TimelineService {
	cfg := loadFanoutConfig()
	return service.NewTimelineService(userRepo, tweetRepo, inboxRepo,
		cfg.Threshold, cfg.PageSize, l)
}
