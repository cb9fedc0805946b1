package models

import (
	"gorm.io/gorm"
)

// Account 表示系統中的登入帳號
type Account struct {
	gorm.Model        // 內嵌 gorm.Model，提供 ID、CreatedAt、UpdatedAt 和 DeletedAt 字段
	Username   string `gorm:"uniqueIndex;not null" json:"username"` // 帳號名稱，必須唯一
	Password   string `gorm:"not null" json:"-"`                    // bcrypt 雜湊後的密碼，json 序列化時會被忽略
}
