package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement represents the database model for ledger statements.
// Seq is the insertion order; ID is the public identifier.
type Statement struct {
	Seq         uint64          `gorm:"primaryKey;autoIncrement;index:idx_statements_user_seq,priority:2"`
	ID          string          `gorm:"not null;size:36;uniqueIndex:idx_statements_id"`
	UserID      string          `gorm:"not null;size:36;index:idx_statements_user_seq,priority:1"`
	Type        string          `gorm:"not null;size:16"`
	Amount      decimal.Decimal `gorm:"not null;type:numeric(20,2)"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName specifies the table name for Statement
func (Statement) TableName() string {
	return "statements"
}
