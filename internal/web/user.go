package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lzh-go/chirp/internal/domain"
	"github.com/lzh-go/chirp/internal/service"
	"github.com/lzh-go/chirp/pkg/logger"
)

type UserHandler struct {
	svc service.UserService
	l   logger.LoggerV1
}

func NewUserHandler(svc service.UserService, l logger.LoggerV1) *UserHandler {
	return &UserHandler{
		svc: svc,
		l:   l,
	}
}

func (h *UserHandler) RegisterRoutes(server *gin.Engine) {
	server.POST("/users", h.Signup)
	server.POST("/follows", h.Follow)
}

type SignupReq struct {
	Username string `json:"username"`
}

type FollowReq struct {
	FollowerId int64 `json:"followerId"`
	FolloweeId int64 `json:"followeeId"`
}

type UserVO struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Ctime    string `json:"ctime"`
}

func (h *UserHandler) Signup(ctx *gin.Context) {
	var req SignupReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	if strings.TrimSpace(req.Username) == "" {
		ctx.JSON(http.StatusOK, Result{
			Code: 4,
			Msg:  "参数不对",
		})
		return
	}
	u, err := h.svc.Signup(ctx, req.Username)
	if err != nil {
		ctx.JSON(http.StatusOK, Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("创建用户失败", logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Data: h.toVO(u),
	})
}

func (h *UserHandler) Follow(ctx *gin.Context) {
	var req FollowReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	if req.FollowerId <= 0 || req.FolloweeId <= 0 ||
		req.FollowerId == req.FolloweeId {
		ctx.JSON(http.StatusOK, Result{
			Code: 4,
			Msg:  "参数不对",
		})
		return
	}
	err := h.svc.Follow(ctx, req.FollowerId, req.FolloweeId)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, Result{
			Msg: "OK",
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
		h.l.Error("关注失败",
			logger.Error(err),
			logger.Int64("follower", req.FollowerId),
			logger.Int64("followee", req.FolloweeId))
	}
}

func (h *UserHandler) toVO(u domain.User) UserVO {
	return UserVO{
		Id:       u.Id,
		Username: u.Username,
		Ctime:    u.Ctime.Format(time.DateTime),
	}
}
