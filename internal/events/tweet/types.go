package tweet

const topicTweetFanout = "tweet_fanout"

// FanoutEvent 一次素人发布对应恰好一个事件，里面带上发布时刻的全量粉丝
// 投递语义是 at least once，消费那边要做到幂等
type FanoutEvent struct {
	TweetId     int64   `json:"tweetId"`
	FollowerIds []int64 `json:"followerIds"`
}
