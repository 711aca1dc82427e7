package domain

import "time"

type User struct {
	Id       int64
	Username string
	Ctime    time.Time
}
