package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepoCreateExistsDelete(t *testing.T) {
	db := newTestDB(t)
	r := NewFollowRepo(db)

	require.NoError(t, r.Create("a", "b"))

	// 有向边：a->b 成立不意味着 b->a 成立
	ok, err := r.Exists("a", "b")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.Exists("b", "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Delete("a", "b"))
	ok, err = r.Exists("a", "b")
	require.NoError(t, err)
	assert.False(t, ok)

	// 删不存在的边也不报错
	require.NoError(t, r.Delete("a", "b"))
}

func TestFollowRepoCreateIdempotent(t *testing.T) {
	db := newTestDB(t)
	r := NewFollowRepo(db)

	require.NoError(t, r.Create("a", "b"))
	require.NoError(t, r.Create("a", "b"))

	cnt, err := r.CountFollowing("a")
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)
}

func TestFollowRepoListsAndCounts(t *testing.T) {
	db := newTestDB(t)
	r := NewFollowRepo(db)

	require.NoError(t, r.Create("a", "b"))
	require.NoError(t, r.Create("a", "c"))
	require.NoError(t, r.Create("c", "b"))

	following, err := r.FollowingIDs("a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b", "c"}, following)

	followers, err := r.FollowerIDs("b")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, followers)

	cnt, err := r.CountFollowers("b")
	require.NoError(t, err)
	assert.EqualValues(t, 2, cnt)
	cnt, err = r.CountFollowing("b")
	require.NoError(t, err)
	assert.Zero(t, cnt)
}
