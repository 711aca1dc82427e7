package ioc

import (
	"github.com/IBM/sarama"
	tweetevt "github.com/lzh-go/chirp/internal/events/tweet"
	"github.com/lzh-go/chirp/pkg/saramax"
	"github.com/spf13/viper"
)

func InitKafka() sarama.Client {
	type Config struct {
		Addrs []string `yaml:"addrs"`
	}
	saramaCfg := sarama.NewConfig()
	// 同步等 broker 确认，扩散事件不能悄悄丢掉
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	var cfg Config
	err := viper.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}
	client, err := sarama.NewClient(cfg.Addrs, saramaCfg)
	if err != nil {
		panic(err)
	}
	return client
}

func InitSyncProducer(client sarama.Client) sarama.SyncProducer {
	res, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		panic(err)
	}
	return res
}

// NewConsumers 所有的 Consumer 在这里注册一下
func NewConsumers(c1 *tweetevt.FanoutEventConsumer) []saramax.Consumer {
	return []saramax.Consumer{c1}
}
