package repo

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"go-micropost/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error {
	// 入库前统一小写；唯一索引因此等效于大小写不敏感约束
	u.Email = strings.ToLower(u.Email)
	if err := r.db.Create(u).Error; err != nil {
		return translateDup(err)
	}
	return nil
}

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", strings.ToLower(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Update(id string, patch domain.UserPatch) (*domain.User, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Email != nil {
		fields["email"] = strings.ToLower(*patch.Email)
	}
	if patch.PasswordDigest != nil {
		fields["password_digest"] = *patch.PasswordDigest
	}
	if len(fields) > 0 {
		res := r.db.Model(&domain.User{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, translateDup(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrNotFound
		}
	}
	return r.FindByID(id)
}

func (r *UserRepo) UpdateRememberDigest(id, digest string) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", id).Update("remember_digest", digest)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) MarkActivated(id string, at time.Time) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", id).
		Updates(map[string]any{"activated": true, "activated_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete 单事务内删除帖子、两个方向的关注边和用户本身，避免出现孤儿数据
func (r *UserRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&domain.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", id, id).Delete(&domain.Follow{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&domain.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// translateDup 存储层唯一约束是防重复注册的最终权威；
// 冲突要以字段错误的形式回给调用方，而不是裸的存储错误
func translateDup(err error) error {
	if err == nil {
		return nil
	}
	if isDupKey(err) {
		return domain.ValidationErrors{{
			Field: "email", Code: domain.CodeNotUnique, Message: "has already been taken",
		}}
	}
	return err
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免驱动/版本差异
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
