package tweet

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"
)

type Producer interface {
	ProduceFanoutEvent(ctx context.Context, evt FanoutEvent) error
}

type KafkaProducer struct {
	producer sarama.SyncProducer
}

func NewKafkaProducer(pc sarama.SyncProducer) Producer {
	return &KafkaProducer{
		producer: pc,
	}
}

// ProduceFanoutEvent 在推文落库之后调用
// 发送失败整个写请求算失败，推文不回滚，这是已知的不一致窗口
func (p *KafkaProducer) ProduceFanoutEvent(ctx context.Context, evt FanoutEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topicTweetFanout,
		Key:   sarama.StringEncoder(strconv.FormatInt(evt.TweetId, 10)),
		Value: sarama.ByteEncoder(data),
	})
	return err
}
