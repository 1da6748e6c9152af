package schema

import (
	"github.com/castlight/hub-indexer/internal/domain"
)

// UserData represents the user_data table - one profile field update.
type UserData struct {
	MessageFields

	// Type is the profile field code (1=avatar, 2=display name, 3=bio, 6=username)
	Type domain.UserDataType `gorm:"column:type;not null;type:smallint"`
	// Value is the new field value
	Value string `gorm:"column:value;not null;default:'';type:text"`
}

// TableName specifies the table name for the UserData model
func (UserData) TableName() string {
	return "user_data"
}
