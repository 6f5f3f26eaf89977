package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-micropost/internal/domain"
)

func mkPost(t *testing.T, r *PostRepo, userID, content string, at time.Time) *domain.Post {
	t.Helper()
	p := &domain.Post{UserID: userID, Content: content, CreatedAt: at}
	require.NoError(t, r.Create(p))
	return p
}

func contents(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Content
	}
	return out
}

func TestPostRepoListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	r := NewPostRepo(db)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mkPost(t, r, "u1", "oldest", base)
	mkPost(t, r, "u1", "middle", base.Add(time.Hour))
	mkPost(t, r, "u1", "newest", base.Add(2*time.Hour))
	mkPost(t, r, "u2", "other", base.Add(3*time.Hour))

	posts, err := r.ListByUser("u1", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, contents(posts))

	posts, err = r.ListByUser("u1", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "middle"}, contents(posts))
}

func TestPostRepoTimestampTieBrokenByID(t *testing.T) {
	db := newTestDB(t)
	r := NewPostRepo(db)
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// 同一时刻的两条，后插入的 id 更大，应排在前面
	first := mkPost(t, r, "u1", "first", at)
	second := mkPost(t, r, "u1", "second", at)
	require.Greater(t, second.ID, first.ID)

	posts, err := r.ListByUser("u1", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, contents(posts))
}

func TestPostRepoFeed(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepo(db)
	follows := NewFollowRepo(db)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// a 关注 b，不关注 c
	require.NoError(t, follows.Create("a", "b"))

	mkPost(t, posts, "a", "mine", base)
	mkPost(t, posts, "b", "followed", base.Add(time.Hour))
	mkPost(t, posts, "c", "stranger", base.Add(2*time.Hour))

	feed, err := posts.Feed("a", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"followed", "mine"}, contents(feed))

	// 取关后对方的帖子立刻从时间线消失
	require.NoError(t, follows.Delete("a", "b"))
	feed, err = posts.Feed("a", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"mine"}, contents(feed))

	// 零关注用户只看到自己的帖子
	feed, err = posts.Feed("b", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"followed"}, contents(feed))
}

func TestPostRepoFindAndDelete(t *testing.T) {
	db := newTestDB(t)
	r := NewPostRepo(db)
	p := mkPost(t, r, "u1", "bye", time.Now())

	got, err := r.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "bye", got.Content)

	require.NoError(t, r.Delete(p.ID))
	_, err = r.FindByID(p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.Delete(p.ID), domain.ErrNotFound)
}
