package job

import (
	"time"

	"github.com/lzh-go/chirp/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CronJobBuilder 把我们的 Job 包装成 cron.Job，统一记日志
type CronJobBuilder struct {
	l logger.LoggerV1
}

func NewCronJobBuilder(l logger.LoggerV1) *CronJobBuilder {
	return &CronJobBuilder{
		l: l,
	}
}

func (b *CronJobBuilder) Build(job Job) cron.Job {
	name := job.Name()
	return cronJobFuncAdapter(func() error {
		start := time.Now()
		b.l.Info("任务开始", logger.String("job", name))
		defer func() {
			b.l.Info("任务结束",
				logger.String("job", name),
				logger.Int64("duration_ms", time.Since(start).Milliseconds()))
		}()
		err := job.Run()
		if err != nil {
			b.l.Error("任务执行失败",
				logger.Error(err),
				logger.String("job", name))
		}
		return nil
	})
}

type cronJobFuncAdapter func() error

func (c cronJobFuncAdapter) Run() {
	_ = c()
}
