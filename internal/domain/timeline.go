package domain

// TimelinePage 合并之后的首页时间线
type TimelinePage struct {
	Tweets []Tweet       `json:"tweets"`
	Stats  TimelineStats `json:"stats"`
}

// TimelineStats 诊断用的计数，不影响语义
type TimelineStats struct {
	// 收件箱里面解析出来的
	CachedTweets int `json:"cachedTweets"`
	// 拉模型现查出来的
	CelebrityTweets int `json:"celebrityTweets"`
	TotalUnique     int `json:"totalUnique"`
	Returned        int `json:"returned"`
}
