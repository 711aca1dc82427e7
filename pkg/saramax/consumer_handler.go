package saramax

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/lzh-go/chirp/pkg/logger"
)

type Handler[T any] struct {
	l  logger.LoggerV1
	fn func(msg *sarama.ConsumerMessage, t T) error
}

// NewHandler 传入实现好的自定义 consume
func NewHandler[T any](l logger.LoggerV1, consume func(msg *sarama.ConsumerMessage, t T) error) *Handler[T] {
	return &Handler[T]{
		l:  l,
		fn: consume,
	}
}

func (h Handler[T]) Setup(session sarama.ConsumerGroupSession) error {
	// 啥也不干
	return nil
}

func (h Handler[T]) Cleanup(session sarama.ConsumerGroupSession) error {
	// 啥也不干
	return nil
}

func (h Handler[T]) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	msgs := claim.Messages()
	for msg := range msgs {
		var t T
		err := json.Unmarshal(msg.Value, &t)
		if err != nil {
			h.l.Error("反序列化失败",
				logger.Error(err),
				// 出错消息定位
				logger.String("topic", msg.Topic),
				logger.Int64("partition", int64(msg.Partition)),
				logger.Int64("offset", msg.Offset))
			// 这种消息重投多少次都不可能成功，提交掉，免得卡住整个分区
			session.MarkMessage(msg, "")
			continue
		}
		// 拿到消息之后，调用自定义的 consume 处理消息
		// 并在这里执行重试
		for i := 0; i < 3; i++ {
			err = h.fn(msg, t)
			if err == nil {
				break
			}
			h.l.Error("处理消息失败",
				logger.Error(err),
				logger.String("topic", msg.Topic),
				logger.Int64("partition", int64(msg.Partition)),
				logger.Int64("offset", msg.Offset))
		}

		if err != nil {
			h.l.Error("处理消息失败-重试次数上限",
				logger.Error(err),
				logger.String("topic", msg.Topic),
				logger.Int64("partition", int64(msg.Partition)),
				logger.Int64("offset", msg.Offset))
			// 不能跳过去接着消费：后面随便提交一条，位点就越过这条了，
			// 等于把消息丢了。直接退出会话，重新加入之后从未提交的位置
			// 重新投递。消费逻辑自身要做到幂等
			return err
		}
		// 处理完消息后，记得提交
		session.MarkMessage(msg, "")
	}
	return nil
}
