package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player represents a player record. MarketValue is expressed in millions.
type Player struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null;index"`
	Age         float64   `json:"age" gorm:"not null"`
	MarketValue float64   `json:"marketValue" gorm:"column:market_value;not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName pins the table name
func (Player) TableName() string {
	return "players"
}

// BeforeCreate assigns the identifier; callers never choose it.
func (p *Player) BeforeCreate(tx *gorm.DB) error {
	p.ID = uuid.NewString()
	return nil
}

// PlayerPatch carries the fields of a partial update. Nil fields are left unchanged.
type PlayerPatch struct {
	Name        *string
	Age         *float64
	MarketValue *float64
}

// Empty reports whether the patch changes nothing
func (p PlayerPatch) Empty() bool {
	return p.Name == nil && p.Age == nil && p.MarketValue == nil
}

// Columns returns the column/value pairs to update
func (p PlayerPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 3)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Age != nil {
		cols["age"] = *p.Age
	}
	if p.MarketValue != nil {
		cols["market_value"] = *p.MarketValue
	}
	return cols
}
