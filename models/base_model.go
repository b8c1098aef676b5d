package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel wspólne pola wszystkich tabel. Usuwanie jest miękkie (deleted_at).
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
