package main

import (
	"github.com/gin-gonic/gin"
	"github.com/lzh-go/chirp/pkg/saramax"
	"github.com/robfig/cron/v3"
)

type App struct {
	web       *gin.Engine
	consumers []saramax.Consumer
	cron      *cron.Cron
}
