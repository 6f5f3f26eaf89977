package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword 自适应成本的单向散列，明文永不落库
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword 恒定时间比较；digest 为空（尚未设置密码/令牌）时返回 false，不报错
func CheckPassword(pw, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(pw)) == nil
}
