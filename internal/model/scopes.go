package model

import (
	"gorm.io/gorm"
)

// OwnedBy 把查询会话收窄到指定用户名下的行。
// 仓储层在此 scope 之外还会显式携带 user_id 条件，两层过滤同时生效，任何一层都不允许省略。
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
