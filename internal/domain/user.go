package domain

import "time"

type User struct {
	ID               string     `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Email            string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name             string     `gorm:"size:64;not null" json:"name"`
	PasswordDigest   string     `gorm:"size:100;not null" json:"-"`
	RememberDigest   string     `gorm:"size:100" json:"-"`
	ActivationDigest string     `gorm:"size:100" json:"-"`
	Activated        bool       `gorm:"not null;default:false" json:"activated"`
	ActivatedAt      *time.Time `json:"-"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// UserPatch 局部更新：nil 字段表示不修改
type UserPatch struct {
	Name           *string
	Email          *string
	PasswordDigest *string
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	Update(id string, patch UserPatch) (*User, error)
	UpdateRememberDigest(id, digest string) error
	MarkActivated(id string, at time.Time) error
	// Delete 级联删除该用户的帖子与两个方向的关注边，单事务内完成
	Delete(id string) error
}
