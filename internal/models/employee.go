package models

import (
	"gorm.io/gorm"
)

// Employee 表示一筆員工通訊錄資料
type Employee struct {
	gorm.Model
	Name       string `gorm:"not null" json:"name"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"` // Email 必須唯一
	Department string `gorm:"not null" json:"department"`
}
