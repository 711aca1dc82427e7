package ioc

import (
	rlock "github.com/gotomicro/redis-lock"
	"github.com/lzh-go/chirp/internal/job"
	"github.com/lzh-go/chirp/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

func InitInboxAuditJob(client redis.Cmdable,
	rlockClient *rlock.Client,
	l logger.LoggerV1) *job.InboxAuditJob {
	cfg := loadFanoutConfig()
	return job.NewInboxAuditJob(client, rlockClient, cfg.InboxSize, l)
}

// 所有定时任务都在这里初始化
func InitJobs(l logger.LoggerV1, auditJob *job.InboxAuditJob) *cron.Cron {
	res := cron.New(cron.WithSeconds())
	cbd := job.NewCronJobBuilder(l)
	// 五分钟扫一次
	_, err := res.AddJob("0 */5 * * * ?", cbd.Build(auditJob))
	if err != nil {
		panic(err)
	}
	return res
}
