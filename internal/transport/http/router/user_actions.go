package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-micropost/internal/service"
	httpez "go-micropost/internal/transport/http/ez"
)

func mountUserActions(api, authed *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(api)
	ezAuth := httpez.New(authed)

	// 资料页：用户 + 关注计数 + 最近帖子
	httpez.RegisterAction[struct{}, *service.ProfileSummary](ezPublic, httpez.Action[struct{}, *service.ProfileSummary]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*service.ProfileSummary, error) {
			return d.Users.Profile(c.Request.Context(), c.Param("id"))
		},
	})

	// 资料编辑：只能改自己的
	type updateIn struct {
		Name                 *string `json:"name"`
		Email                *string `json:"email"`
		Password             *string `json:"password"`
		PasswordConfirmation *string `json:"password_confirmation"`
	}
	httpez.RegisterAction[updateIn, userOut](ezAuth, httpez.Action[updateIn, userOut]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *updateIn) (userOut, error) {
			id := c.Param("id")
			if id != c.GetString("userId") {
				return userOut{}, httpez.Forbidden("forbidden")
			}
			u, err := d.Users.UpdateProfile(id, service.ProfileUpdate{
				Name:                 in.Name,
				Email:                in.Email,
				Password:             in.Password,
				PasswordConfirmation: in.PasswordConfirmation,
			})
			if err != nil {
				return userOut{}, err
			}
			return toUserOut(u), nil
		},
	})

	// 删号：级联清理帖子与关注边
	httpez.RegisterAction[struct{}, gin.H](ezAuth, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if id != c.GetString("userId") {
				return nil, httpez.Forbidden("forbidden")
			}
			if err := d.Users.Delete(id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](ezPublic, httpez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/users/:id/followers",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			ids, err := d.Relations.Followers(c.Param("id"))
			if err != nil {
				return nil, err
			}
			return gin.H{"followers": ids}, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](ezPublic, httpez.Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/users/:id/following",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			ids, err := d.Relations.Following(c.Param("id"))
			if err != nil {
				return nil, err
			}
			return gin.H{"following": ids}, nil
		},
	})

	// 关注 / 取关：发起方是当前登录用户
	httpez.RegisterAction[struct{}, gin.H](ezAuth, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/follow",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			from, to := c.GetString("userId"), c.Param("id")
			if err := d.Relations.Follow(from, to); err != nil {
				return nil, err
			}
			following, err := d.Relations.IsFollowing(from, to)
			if err != nil {
				return nil, err
			}
			return gin.H{"following": following}, nil
		},
	})

	httpez.RegisterAction[struct{}, gin.H](ezAuth, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/users/:id/follow",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			from, to := c.GetString("userId"), c.Param("id")
			if err := d.Relations.Unfollow(from, to); err != nil {
				return nil, err
			}
			return gin.H{"following": false}, nil
		},
	})
}
