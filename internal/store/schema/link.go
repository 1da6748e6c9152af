package schema

import (
	"github.com/castlight/hub-indexer/internal/domain"
)

// Link represents the links table - one directed relationship between
// two accounts (currently only "follow").
type Link struct {
	MessageFields

	// Type is the relationship type string from the protocol
	Type string `gorm:"column:type;not null;type:text"`
	// TargetFid is the account on the receiving end of the relationship
	TargetFid domain.Fid `gorm:"column:target_fid;not null;type:bigint"`
}

// TableName specifies the table name for the Link model
func (Link) TableName() string {
	return "links"
}
