package ioc

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lzh-go/chirp/internal/web"
	"github.com/lzh-go/chirp/pkg/ginx/middlewares/metric"
)

func InitWebServer(mdls []gin.HandlerFunc,
	tweetHdl *web.TweetHandler,
	userHdl *web.UserHandler) *gin.Engine {
	server := gin.Default()
	server.Use(mdls...)
	tweetHdl.RegisterRoutes(server)
	userHdl.RegisterRoutes(server)
	return server
}

func InitMiddlewares() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		corsHdl(),
		metric.NewBuilder(
			"chirp",
			"web",
			"gin_http",
			"统计 GIN 的 HTTP 接口",
			"my-instance-1").Build(),
	}
}

func corsHdl() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"content-type", "Authorization"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
		MaxAge: 12 * time.Hour,
	})
}
