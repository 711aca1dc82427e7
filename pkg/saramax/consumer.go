package saramax

// Consumer 所有的消费者在启动的时候统一 Start 一下
type Consumer interface {
	Start() error
}
