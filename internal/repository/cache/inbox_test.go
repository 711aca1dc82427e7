package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// 没法给 redis.Cmdable 整个接口生成 mock，这里嵌接口做个假实现，
// 只覆盖用到的几个方法，记录下收到的命令
type fakePipeliner struct {
	redis.Pipeliner

	lpushKey  string
	lpushVals []any

	trimKey   string
	trimStart int64
	trimStop  int64

	execErr error
	execed  bool
}

func (p *fakePipeliner) LPush(ctx context.Context, key string, values ...any) *redis.IntCmd {
	p.lpushKey = key
	p.lpushVals = values
	return redis.NewIntCmd(ctx)
}

func (p *fakePipeliner) LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd {
	p.trimKey = key
	p.trimStart = start
	p.trimStop = stop
	return redis.NewStatusCmd(ctx)
}

func (p *fakePipeliner) Exec(ctx context.Context) ([]redis.Cmder, error) {
	p.execed = true
	return nil, p.execErr
}

type fakeCmdable struct {
	redis.Cmdable

	pip *fakePipeliner

	lrangeKey  string
	lrangeVals []string
	lrangeErr  error
}

func (c *fakeCmdable) Pipeline() redis.Pipeliner {
	return c.pip
}

func (c *fakeCmdable) LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	c.lrangeKey = key
	cmd := redis.NewStringSliceCmd(ctx)
	if c.lrangeErr != nil {
		cmd.SetErr(c.lrangeErr)
	} else {
		cmd.SetVal(c.lrangeVals)
	}
	return cmd
}

func TestRedisInboxCache_Push(t *testing.T) {
	testCases := []struct {
		name string
		mock func() *fakeCmdable

		uid     int64
		tweetId int64

		wantErr error
	}{
		{
			name: "写入并且裁剪",
			mock: func() *fakeCmdable {
				return &fakeCmdable{pip: &fakePipeliner{}}
			},
			uid:     7,
			tweetId: 101,
		},
		{
			name: "redis 错误",
			mock: func() *fakeCmdable {
				return &fakeCmdable{pip: &fakePipeliner{
					execErr: errors.New("mock redis 错误"),
				}}
			},
			uid:     7,
			tweetId: 101,
			wantErr: errors.New("mock redis 错误"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := tc.mock()
			c := NewRedisInboxCache(cmd, 20)
			err := c.Push(context.Background(), tc.uid, tc.tweetId)
			assert.Equal(t, tc.wantErr, err)
			// 不管成败，LPUSH 和 LTRIM 都要进同一个 pipeline
			assert.True(t, cmd.pip.execed)
			assert.Equal(t, "feed:inbox:7", cmd.pip.lpushKey)
			assert.Equal(t, []any{int64(101)}, cmd.pip.lpushVals)
			// 裁剪区间 [0, size-1]，保证收件箱不超容量
			assert.Equal(t, "feed:inbox:7", cmd.pip.trimKey)
			assert.Equal(t, int64(0), cmd.pip.trimStart)
			assert.Equal(t, int64(19), cmd.pip.trimStop)
		})
	}
}

func TestRedisInboxCache_Ids(t *testing.T) {
	testCases := []struct {
		name string
		mock func() *fakeCmdable

		uid int64

		wantIds []int64
		wantErr bool
	}{
		{
			name: "读出并解析",
			mock: func() *fakeCmdable {
				return &fakeCmdable{
					lrangeVals: []string{"103", "102", "101"},
				}
			},
			uid:     7,
			wantIds: []int64{103, 102, 101},
		},
		{
			name: "空收件箱",
			mock: func() *fakeCmdable {
				return &fakeCmdable{}
			},
			uid:     7,
			wantIds: []int64{},
		},
		{
			name: "redis 错误",
			mock: func() *fakeCmdable {
				return &fakeCmdable{
					lrangeErr: errors.New("mock redis 错误"),
				}
			},
			uid:     7,
			wantErr: true,
		},
		{
			name: "脏数据解析失败",
			mock: func() *fakeCmdable {
				return &fakeCmdable{
					lrangeVals: []string{"103", "abc"},
				}
			},
			uid:     7,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := tc.mock()
			c := NewRedisInboxCache(cmd, 20)
			ids, err := c.Ids(context.Background(), tc.uid)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "feed:inbox:7", cmd.lrangeKey)
			assert.Equal(t, tc.wantIds, ids)
		})
	}
}
