package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"go-micropost/internal/core/cache"
	"go-micropost/internal/domain"
	"go-micropost/pkg/utils"
)

const profileCacheTTL = 5 * time.Minute

func profileKey(id string) string { return "profile:" + id }

type SignupInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// ProfileUpdate 任意子集更新；nil 表示该字段不动
type ProfileUpdate struct {
	Name                 *string
	Email                *string
	Password             *string
	PasswordConfirmation *string
}

type ProfileSummary struct {
	User           domain.User   `json:"user"`
	FollowersCount int64         `json:"followersCount"`
	FollowingCount int64         `json:"followingCount"`
	Posts          []domain.Post `json:"posts"`
}

type UserService struct {
	users   domain.UserRepository
	follows domain.FollowRepository
	posts   domain.PostRepository
	cache   *cache.Cache // 可为 nil
	log     *zap.Logger
}

func NewUserService(users domain.UserRepository, follows domain.FollowRepository, posts domain.PostRepository, c *cache.Cache, log *zap.Logger) *UserService {
	return &UserService{users: users, follows: follows, posts: posts, cache: c, log: log}
}

// Signup 校验通过后落库；返回激活令牌（邮件投递在本服务范围之外）。
// 应用层唯一性检查只是提示性的，并发下以存储层唯一索引为准。
func (s *UserService) Signup(in SignupInput) (*domain.User, string, error) {
	errs := ValidateName(in.Name)
	errs = append(errs, ValidateEmail(in.Email)...)
	errs = append(errs, ValidatePassword(in.Password, in.PasswordConfirmation)...)
	if ue := s.advisoryEmailCheck(in.Email, ""); ue != nil {
		errs = append(errs, *ue)
	}
	if len(errs) > 0 {
		return nil, "", errs
	}

	activationToken := utils.NewToken()
	u := &domain.User{
		ID:               utils.NewID(),
		Email:            NormalizeEmail(in.Email),
		Name:             in.Name,
		PasswordDigest:   utils.HashPassword(in.Password),
		ActivationDigest: utils.HashPassword(activationToken),
	}
	if err := s.users.Create(u); err != nil {
		return nil, "", err
	}
	s.log.Info("user signed up", zap.String("user_id", u.ID))
	return u, activationToken, nil
}

func (s *UserService) Authenticate(email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(password, u.PasswordDigest) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// Remember 生成持久登录令牌，库里只存散列，裸令牌交给调用方写 cookie
func (s *UserService) Remember(userID string) (string, error) {
	token := utils.NewToken()
	if err := s.users.UpdateRememberDigest(userID, utils.HashPassword(token)); err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserService) VerifyRemember(userID, token string) (*domain.User, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	// digest 为空时 CheckPassword 返回 false，不报错
	if !utils.CheckPassword(token, u.RememberDigest) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// Forget 登出时吊销持久登录
func (s *UserService) Forget(userID string) error {
	return s.users.UpdateRememberDigest(userID, "")
}

func (s *UserService) Activate(userID, token string) error {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if u.Activated {
		return nil
	}
	if !utils.CheckPassword(token, u.ActivationDigest) {
		return domain.ErrInvalidCredentials
	}
	return s.users.MarkActivated(userID, time.Now())
}

func (s *UserService) Get(id string) (*domain.User, error) {
	return s.users.FindByID(id)
}

func (s *UserService) UpdateProfile(id string, in ProfileUpdate) (*domain.User, error) {
	var errs domain.ValidationErrors
	var patch domain.UserPatch

	if in.Name != nil {
		errs = append(errs, ValidateName(*in.Name)...)
		patch.Name = in.Name
	}
	if in.Email != nil {
		errs = append(errs, ValidateEmail(*in.Email)...)
		if ue := s.advisoryEmailCheck(*in.Email, id); ue != nil {
			errs = append(errs, *ue)
		}
		email := NormalizeEmail(*in.Email)
		patch.Email = &email
	}
	if in.Password != nil {
		confirm := ""
		if in.PasswordConfirmation != nil {
			confirm = *in.PasswordConfirmation
		}
		errs = append(errs, ValidatePassword(*in.Password, confirm)...)
		if len(errs) == 0 {
			digest := utils.HashPassword(*in.Password)
			patch.PasswordDigest = &digest
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	u, err := s.users.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidateProfile(id)
	return u, nil
}

func (s *UserService) Delete(id string) error {
	if err := s.users.Delete(id); err != nil {
		return err
	}
	s.invalidateProfile(id)
	s.log.Info("user deleted", zap.String("user_id", id))
	return nil
}

// Profile 资料页聚合（用户 + 关注计数 + 最近帖子），带 redis 缓存；
// 写路径都会主动失效，读不到过期数据
func (s *UserService) Profile(ctx context.Context, id string) (*ProfileSummary, error) {
	load := func(ctx context.Context) (*ProfileSummary, error) {
		u, err := s.users.FindByID(id)
		if err != nil {
			return nil, err
		}
		followers, err := s.follows.CountFollowers(id)
		if err != nil {
			return nil, err
		}
		following, err := s.follows.CountFollowing(id)
		if err != nil {
			return nil, err
		}
		posts, err := s.posts.ListByUser(id, 30)
		if err != nil {
			return nil, err
		}
		return &ProfileSummary{User: *u, FollowersCount: followers, FollowingCount: following, Posts: posts}, nil
	}
	if s.cache == nil {
		return load(ctx)
	}
	return cache.GetOrLoadJSON[ProfileSummary](s.cache, ctx, profileKey(id), profileCacheTTL, load)
}

func (s *UserService) advisoryEmailCheck(email, selfID string) *domain.FieldError {
	existing, err := s.users.FindByEmail(email)
	if err == nil && existing.ID != selfID {
		return &domain.FieldError{Field: "email", Code: domain.CodeNotUnique, Message: "has already been taken"}
	}
	return nil
}

func (s *UserService) invalidateProfile(ids ...string) {
	if s.cache == nil {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = profileKey(id)
	}
	s.cache.Invalidate(context.Background(), keys...)
}
