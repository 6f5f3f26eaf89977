package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-micropost/internal/domain"
	"go-micropost/pkg/utils"
)

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	u, activationToken, err := env.users.Signup(SignupInput{
		Name: "Example User", Email: "User@Example.COM",
		Password: "foobarbazz", PasswordConfirmation: "foobarbazz",
	})
	require.NoError(t, err)
	assert.Len(t, u.ID, 32)
	assert.Equal(t, "user@example.com", u.Email)
	assert.False(t, u.Activated)
	assert.NotEmpty(t, activationToken)

	// 库里只存散列
	assert.NotEqual(t, "foobarbazz", u.PasswordDigest)
	assert.True(t, utils.CheckPassword("foobarbazz", u.PasswordDigest))
	assert.True(t, utils.CheckPassword(activationToken, u.ActivationDigest))
}

func TestSignupRejectsInvalidInput(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.users.Signup(SignupInput{
		Name: "", Email: "bad_at_example.org",
		Password: "short", PasswordConfirmation: "different",
	})
	verrs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.Has("name", domain.CodeBlank))
	assert.True(t, verrs.Has("email", domain.CodeBadFormat))
	assert.True(t, verrs.Has("password", domain.CodeTooShort))
	assert.True(t, verrs.Has("password_confirmation", domain.CodeMismatch))
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	signup(t, env, "First", "dup@example.com")

	// 大小写不同也算重复
	_, _, err := env.users.Signup(SignupInput{
		Name: "Second", Email: "DUP@example.com",
		Password: "foobarbazz", PasswordConfirmation: "foobarbazz",
	})
	verrs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.Has("email", domain.CodeNotUnique))
}

func TestAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	u := signup(t, env, "Example", "login@example.com")

	got, err := env.users.Authenticate("LOGIN@example.com", "foobarbazz")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = env.users.Authenticate("login@example.com", "wrongpass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// 未注册邮箱与密码错误不可区分
	_, err = env.users.Authenticate("ghost@example.com", "foobarbazz")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRememberVerifyForget(t *testing.T) {
	env := newTestEnv(t)
	u := signup(t, env, "Example", "r@example.com")

	// 没 remember 过时校验任何令牌都失败
	_, err := env.users.VerifyRemember(u.ID, "whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	token, err := env.users.Remember(u.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := env.users.VerifyRemember(u.ID, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = env.users.VerifyRemember(u.ID, "forged")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// 登出吊销后原令牌作废
	require.NoError(t, env.users.Forget(u.ID))
	_, err = env.users.VerifyRemember(u.ID, token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestActivate(t *testing.T) {
	env := newTestEnv(t)
	u, token, err := env.users.Signup(SignupInput{
		Name: "Example", Email: "act@example.com",
		Password: "foobarbazz", PasswordConfirmation: "foobarbazz",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, env.users.Activate(u.ID, "bogus"), domain.ErrInvalidCredentials)

	require.NoError(t, env.users.Activate(u.ID, token))
	got, err := env.users.Get(u.ID)
	require.NoError(t, err)
	assert.True(t, got.Activated)
	assert.NotNil(t, got.ActivatedAt)

	// 已激活后重复调用是 no-op，令牌不再被检查
	assert.NoError(t, env.users.Activate(u.ID, "bogus"))
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	u := signup(t, env, "Before", "before@example.com")

	name := "After"
	got, err := env.users.UpdateProfile(u.ID, ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, "before@example.com", got.Email, "untouched field stays")

	email := "After@Example.Com"
	got, err = env.users.UpdateProfile(u.ID, ProfileUpdate{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "after@example.com", got.Email)

	pw, confirm := "newpassword", "newpassword"
	_, err = env.users.UpdateProfile(u.ID, ProfileUpdate{Password: &pw, PasswordConfirmation: &confirm})
	require.NoError(t, err)
	_, err = env.users.Authenticate("after@example.com", "newpassword")
	require.NoError(t, err)

	// 自己的邮箱不算撞自己
	same := "after@example.com"
	_, err = env.users.UpdateProfile(u.ID, ProfileUpdate{Email: &same})
	assert.NoError(t, err)

	bad := ""
	_, err = env.users.UpdateProfile(u.ID, ProfileUpdate{Name: &bad})
	verrs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.Has("name", domain.CodeBlank))
}

func TestUpdateProfileEmailTakenByOther(t *testing.T) {
	env := newTestEnv(t)
	signup(t, env, "Owner", "owner@example.com")
	other := signup(t, env, "Other", "other@example.com")

	email := "owner@example.com"
	_, err := env.users.UpdateProfile(other.ID, ProfileUpdate{Email: &email})
	verrs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.True(t, verrs.Has("email", domain.CodeNotUnique))
}

func TestProfileSummary(t *testing.T) {
	env := newTestEnv(t)
	a := signup(t, env, "Alice", "alice@example.com")
	b := signup(t, env, "Bob", "bob@example.com")

	require.NoError(t, env.rels.Follow(b.ID, a.ID))
	_, err := env.posts.Create(a.ID, "hello world")
	require.NoError(t, err)

	sum, err := env.users.Profile(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, sum.User.ID)
	assert.EqualValues(t, 1, sum.FollowersCount)
	assert.Zero(t, sum.FollowingCount)
	require.Len(t, sum.Posts, 1)
	assert.Equal(t, "hello world", sum.Posts[0].Content)

	_, err = env.users.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	u := signup(t, env, "Gone", "gone@example.com")
	_, err := env.posts.Create(u.ID, "soon gone")
	require.NoError(t, err)

	require.NoError(t, env.users.Delete(u.ID))
	_, err = env.users.Get(u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, env.users.Delete(u.ID), domain.ErrNotFound)
}
