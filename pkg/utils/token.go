package utils

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// NewID 32 位十六进制主键
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewToken 不透明随机令牌（remember / activation），只存其散列
func NewToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
