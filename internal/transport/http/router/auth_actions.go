package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-micropost/internal/domain"
	"go-micropost/internal/service"
	httpez "go-micropost/internal/transport/http/ez"
)

type userOut struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Activated bool   `json:"activated"`
}

func toUserOut(u *domain.User) userOut {
	return userOut{ID: u.ID, Email: u.Email, Name: u.Name, Activated: u.Activated}
}

func mountAuthActions(api, authed *gin.RouterGroup, d Deps) {
	ezPublic := httpez.New(api)
	ezAuth := httpez.New(authed)

	// 注册即登录；激活令牌交给外部投递
	type signupIn struct {
		Name                 string `json:"name"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	type signupOut struct {
		Token           string  `json:"token"`
		User            userOut `json:"user"`
		ActivationToken string  `json:"activationToken"`
	}
	httpez.RegisterAction[signupIn, signupOut](ezPublic, httpez.Action[signupIn, signupOut]{
		Method: http.MethodPost,
		Path:   "/auth/signup",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *signupIn) (signupOut, error) {
			u, actToken, err := d.Users.Signup(service.SignupInput{
				Name:                 in.Name,
				Email:                in.Email,
				Password:             in.Password,
				PasswordConfirmation: in.PasswordConfirmation,
			})
			if err != nil {
				return signupOut{}, err
			}
			tok, err := d.JWTer.Issue(u.ID)
			if err != nil {
				return signupOut{}, httpez.Internal("issue token failed", err)
			}
			return signupOut{Token: tok, User: toUserOut(u), ActivationToken: actToken}, nil
		},
	})

	type loginIn struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Remember bool   `json:"remember"`
	}
	type loginOut struct {
		Token            string  `json:"token"`
		User             userOut `json:"user"`
		RememberToken    string  `json:"rememberToken,omitempty"`
		RememberTTLHours int     `json:"rememberTtlHours,omitempty"`
	}
	httpez.RegisterAction[loginIn, loginOut](ezPublic, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			u, err := d.Users.Authenticate(in.Email, in.Password)
			if err != nil {
				return loginOut{}, err
			}
			tok, err := d.JWTer.Issue(u.ID)
			if err != nil {
				return loginOut{}, httpez.Internal("issue token failed", err)
			}
			out := loginOut{Token: tok, User: toUserOut(u)}
			if in.Remember {
				// 裸令牌只在这里出现一次，由调用方写入持久 cookie
				rt, err := d.Users.Remember(u.ID)
				if err != nil {
					return loginOut{}, httpez.Internal("remember failed", err)
				}
				out.RememberToken = rt
				out.RememberTTLHours = int(d.RememberTTL.Hours())
			}
			return out, nil
		},
	})

	// 持久登录换新会话（cookie 里的 user_id + remember_token）
	type refreshIn struct {
		UserID        string `json:"user_id" binding:"required"`
		RememberToken string `json:"remember_token" binding:"required"`
	}
	type refreshOut struct {
		Token string  `json:"token"`
		User  userOut `json:"user"`
	}
	httpez.RegisterAction[refreshIn, refreshOut](ezPublic, httpez.Action[refreshIn, refreshOut]{
		Method: http.MethodPost,
		Path:   "/auth/refresh",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *refreshIn) (refreshOut, error) {
			u, err := d.Users.VerifyRemember(in.UserID, in.RememberToken)
			if err != nil {
				return refreshOut{}, err
			}
			tok, err := d.JWTer.Issue(u.ID)
			if err != nil {
				return refreshOut{}, httpez.Internal("issue token failed", err)
			}
			return refreshOut{Token: tok, User: toUserOut(u)}, nil
		},
	})

	type activateIn struct {
		UserID string `json:"user_id" binding:"required"`
		Token  string `json:"token" binding:"required"`
	}
	httpez.RegisterAction[activateIn, gin.H](ezPublic, httpez.Action[activateIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/activate",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *activateIn) (gin.H, error) {
			if err := d.Users.Activate(in.UserID, in.Token); err != nil {
				return nil, err
			}
			return gin.H{"activated": true}, nil
		},
	})

	// 登出：吊销 remember 摘要
	httpez.RegisterAction[struct{}, gin.H](ezAuth, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			if err := d.Users.Forget(c.GetString("userId")); err != nil {
				return nil, err
			}
			return gin.H{"loggedOut": true}, nil
		},
	})
}
