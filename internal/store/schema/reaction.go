package schema

import (
	"gorm.io/datatypes"

	"github.com/castlight/hub-indexer/internal/domain"
)

// Reaction represents the reactions table - one like or recast.
type Reaction struct {
	MessageFields

	// Type is the reaction type (1=like, 2=recast)
	Type domain.ReactionType `gorm:"column:type;not null;type:smallint"`
	// TargetCast identifies the reacted-to cast ({fid, hash}) as JSON
	TargetCast datatypes.JSON `gorm:"column:target_cast;type:jsonb"`
	// TargetURL is set when the reaction targets an off-network URL
	TargetURL string `gorm:"column:target_url;not null;default:'';type:text"`
}

// TableName specifies the table name for the Reaction model
func (Reaction) TableName() string {
	return "reactions"
}
