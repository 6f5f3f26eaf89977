package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id := NewID()
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, NewID())
}

func TestNewToken(t *testing.T) {
	tok := NewToken()
	assert.NotEmpty(t, tok)
	assert.NotEqual(t, tok, NewToken())

	// 令牌本身不入库，只存散列，二者要能对上
	assert.True(t, CheckPassword(tok, HashPassword(tok)))
}
