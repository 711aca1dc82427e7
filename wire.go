//go:build wireinject

package main

import (
	"github.com/google/wire"
	rlock "github.com/gotomicro/redis-lock"
	tweetevt "github.com/lzh-go/chirp/internal/events/tweet"
	"github.com/lzh-go/chirp/internal/repository"
	"github.com/lzh-go/chirp/internal/repository/dao"
	"github.com/lzh-go/chirp/internal/service"
	"github.com/lzh-go/chirp/internal/web"
	"github.com/lzh-go/chirp/ioc"
)

func InitApp() *App {
	wire.Build(
		// 最基础的第三方依赖
		ioc.InitDB, ioc.InitRedis,
		ioc.InitLogger,
		ioc.InitKafka,
		ioc.InitSyncProducer,
		rlock.NewClient,

		// DAO
		dao.NewUserDAO,
		dao.NewGORMTweetDAO,
		dao.NewGORMFollowDAO,

		ioc.InitInboxCache,

		repository.NewUserRepository,
		repository.NewTweetRepository,
		repository.NewFollowRepository,
		repository.NewCachedInboxRepository,

		tweetevt.NewKafkaProducer,
		tweetevt.NewFanoutEventConsumer,
		ioc.NewConsumers,

		ioc.InitTweetService,
		ioc.InitTimelineService,
		service.NewUserService,

		web.NewTweetHandler,
		web.NewUserHandler,
		ioc.InitMiddlewares,
		ioc.InitWebServer,

		ioc.InitInboxAuditJob,
		ioc.InitJobs,

		wire.Struct(new(App), "*"),
	)
	return new(App)
}
