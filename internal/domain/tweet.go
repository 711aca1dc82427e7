package domain

import "time"

type Tweet struct {
	Id       int64
	SenderId int64
	Content  string
	// Ctime 是聚合排序的依据
	Ctime time.Time
}

// PostResult 发布之后告诉调用方走的是推模型还是拉模型
type PostResult struct {
	Tweet       Tweet
	IsCelebrity bool
	FollowerCnt int64
}
