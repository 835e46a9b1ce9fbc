package model

import (
	"github.com/google/uuid"
)

// UserModel is the GORM-specific read model of the 'users' table.
// Only the columns the scheduler reads are mapped.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Name     string    `gorm:"type:text"`
	Timezone *string   `gorm:"type:varchar(64)"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
