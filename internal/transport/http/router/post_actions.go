package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-micropost/internal/domain"
	httpez "go-micropost/internal/transport/http/ez"
)

const defaultPageSize = 30

func mountPostActions(api, authed *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(api)
	ezAuth := httpez.New(authed)

	type createIn struct {
		Content string `json:"content"`
	}
	httpez.RegisterAction[createIn, *domain.Post](ezAuth, httpez.Action[createIn, *domain.Post]{
		Method: http.MethodPost,
		Path:   "/posts",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *createIn) (*domain.Post, error) {
			return d.Posts.Create(c.GetString("userId"), in.Content)
		},
	})

	httpez.RegisterAction[struct{}, gin.H](ezAuth, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/posts/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := strconv.ParseUint(c.Param("id"), 10, 64)
			if err != nil {
				return nil, httpez.BadRequest("invalid post id")
			}
			if err := d.Posts.Delete(id, c.GetString("userId")); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	type listQ struct {
		Limit int `form:"limit,default=30"`
	}
	httpez.RegisterAction[listQ, gin.H](ezPublic, httpez.Action[listQ, gin.H]{
		Method: http.MethodGet,
		Path:   "/users/:id/posts",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (gin.H, error) {
			limit := in.Limit
			if limit <= 0 || limit > 100 {
				limit = defaultPageSize
			}
			posts, err := d.Posts.ListByUser(c.Param("id"), limit)
			if err != nil {
				return nil, err
			}
			return gin.H{"posts": posts}, nil
		},
	})

	// 首页时间线：自己 + 关注对象，newest-first
	httpez.RegisterAction[listQ, gin.H](ezAuth, httpez.Action[listQ, gin.H]{
		Method: http.MethodGet,
		Path:   "/feed",
		Binder: httpez.BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *listQ) (gin.H, error) {
			limit := in.Limit
			if limit <= 0 || limit > 100 {
				limit = defaultPageSize
			}
			posts, err := d.Posts.Feed(c.GetString("userId"), limit)
			if err != nil {
				return nil, err
			}
			return gin.H{"posts": posts}, nil
		},
	})
}
