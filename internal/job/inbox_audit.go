package job

import (
	"context"
	"sync"
	"time"

	rlock "github.com/gotomicro/redis-lock"
	"github.com/lzh-go/chirp/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// InboxAuditJob 兜底任务
// worker 在 LPUSH 和 LTRIM 之间崩掉的话，收件箱可能超出容量
// 这里定期扫一遍，把超长的裁回去
type InboxAuditJob struct {
	client      redis.Cmdable
	rlockClient *rlock.Client
	size        int64
	timeout     time.Duration
	key         string
	l           logger.LoggerV1
	lock        *rlock.Lock
	localLock   sync.Mutex
}

func NewInboxAuditJob(client redis.Cmdable,
	rlockClient *rlock.Client,
	size int64,
	l logger.LoggerV1) *InboxAuditJob {
	return &InboxAuditJob{
		client:      client,
		rlockClient: rlockClient,
		size:        size,
		timeout:     time.Second * 30,
		key:         "rlock:cron_job:inbox_audit",
		l:           l,
	}
}

func (j *InboxAuditJob) Name() string {
	return "inbox_audit"
}

func (j *InboxAuditJob) Run() error {
	j.localLock.Lock()
	defer j.localLock.Unlock()
	if j.lock == nil {
		// 多实例部署的时候只让一个实例来扫
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		lock, err := j.rlockClient.Lock(ctx, j.key, j.timeout, &rlock.FixIntervalRetry{
			Interval: time.Millisecond * 100,
			Max:      0,
		}, time.Second)
		if err != nil {
			// 没抢到锁，说明别的实例在干活
			return nil
		}
		j.lock = lock
		go func() {
			err1 := lock.AutoRefresh(j.timeout/2, time.Second)
			if err1 != nil {
				// 续约失败就放弃，下一轮重新抢
				j.l.Error("续约失败", logger.Error(err1))
			}
			j.localLock.Lock()
			j.lock = nil
			j.localLock.Unlock()
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	return j.trimAll(ctx)
}

func (j *InboxAuditJob) trimAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := j.client.Scan(ctx, cursor, "feed:inbox:*", 100).Result()
		if err != nil {
			return err
		}
		for _, key := range keys {
			err = j.client.LTrim(ctx, key, 0, j.size-1).Err()
			if err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
