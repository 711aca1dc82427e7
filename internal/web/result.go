package web

type Result struct {
	// 业务错误码，0 表示没问题
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}
