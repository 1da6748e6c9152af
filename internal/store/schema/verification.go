package schema

import (
	"gorm.io/datatypes"
)

// Verification represents the verifications table - one address
// ownership claim.
type Verification struct {
	MessageFields

	// Claim is the full verification claim body as JSON
	Claim datatypes.JSON `gorm:"column:claim;type:jsonb"`
}

// TableName specifies the table name for the Verification model
func (Verification) TableName() string {
	return "verifications"
}
