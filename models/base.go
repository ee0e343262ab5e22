package models

import (
	"time"
)

// BaseModel tüm tablolara gömülen ortak alanlar.
// Silmeler bu projede kalıcıdır (hard delete); soft delete kolonu yoktur.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
