package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-micropost/internal/core/auth"
	"go-micropost/internal/service"
	mdw "go-micropost/internal/transport/http/middleware"
)

type Deps struct {
	Users       *service.UserService
	Relations   *service.RelationshipService
	Posts       *service.PostService
	JWTer       *auth.JWTer
	RememberTTL time.Duration
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查 / 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 鉴权分组（需要登录的接口都挂这里才能拿到 userId）
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(d.JWTer))

	mountAuthActions(api, authed, d)
	mountUserActions(api, authed, d)
	mountPostActions(api, authed, d)

	return r
}
