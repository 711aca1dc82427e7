package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/lzh-go/chirp/internal/domain"
	"github.com/lzh-go/chirp/internal/service"
	"github.com/lzh-go/chirp/pkg/logger"
)

type TweetHandler struct {
	svc         service.TweetService
	timelineSvc service.TimelineService
	l           logger.LoggerV1
}

func NewTweetHandler(svc service.TweetService,
	timelineSvc service.TimelineService,
	l logger.LoggerV1) *TweetHandler {
	return &TweetHandler{
		svc:         svc,
		timelineSvc: timelineSvc,
		l:           l,
	}
}

func (h *TweetHandler) RegisterRoutes(server *gin.Engine) {
	server.POST("/tweets", h.Post)
	server.GET("/timeline", h.Timeline)
}

type PostTweetReq struct {
	SenderId int64  `json:"senderId"`
	Content  string `json:"content"`
}

type PostTweetResp struct {
	Tweet       TweetVO `json:"tweet"`
	IsCelebrity bool    `json:"isCelebrity"`
	FollowerCnt int64   `json:"followerCnt"`
}

type TimelineResp struct {
	Tweets []TweetVO            `json:"tweets"`
	Stats  domain.TimelineStats `json:"stats"`
}

type TweetVO struct {
	Id       int64  `json:"id"`
	SenderId int64  `json:"senderId"`
	Content  string `json:"content"`
	Ctime    string `json:"ctime"`
}

func (h *TweetHandler) Post(ctx *gin.Context) {
	var req PostTweetReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	// 校验放在最前面，没过就不会碰库
	if req.SenderId <= 0 || strings.TrimSpace(req.Content) == "" {
		ctx.JSON(http.StatusOK, Result{
			Code: 4,
			Msg:  "参数不对",
		})
		return
	}
	res, err := h.svc.Post(ctx, req.SenderId, req.Content)
	if err != nil {
		ctx.JSON(http.StatusOK, Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("发布推文失败",
			logger.Error(err),
			logger.Int64("sender_id", req.SenderId))
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Data: PostTweetResp{
			Tweet:       h.toVO(res.Tweet),
			IsCelebrity: res.IsCelebrity,
			FollowerCnt: res.FollowerCnt,
		},
	})
}

func (h *TweetHandler) Timeline(ctx *gin.Context) {
	uidStr := ctx.Query("uid")
	uid, err := strconv.ParseInt(uidStr, 10, 64)
	if err != nil || uid <= 0 {
		ctx.JSON(http.StatusOK, Result{
			Code: 4,
			Msg:  "参数不对",
		})
		return
	}
	page, err := h.timelineSvc.Get(ctx, uid)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, Result{
			Data: TimelineResp{
				Tweets: slice.Map(page.Tweets, func(idx int, src domain.Tweet) TweetVO {
					return h.toVO(src)
				}),
				Stats: page.Stats,
			},
		})
	case errors.Is(err, service.ErrUserNotFound):
		ctx.JSON(http.StatusOK, Result{
			Code: 4,
			Msg:  "用户不存在",
		})
	default:
		ctx.JSON(http.StatusOK, Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("查询时间线失败",
			logger.Error(err),
			logger.Int64("uid", uid))
	}
}

func (h *TweetHandler) toVO(t domain.Tweet) TweetVO {
	return TweetVO{
		Id:       t.Id,
		SenderId: t.SenderId,
		Content:  t.Content,
		Ctime:    t.Ctime.Format(time.DateTime),
	}
}
