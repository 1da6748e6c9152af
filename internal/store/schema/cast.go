package schema

import (
	"gorm.io/datatypes"
)

// Cast represents the casts table - one authored post, reply or quote.
type Cast struct {
	MessageFields

	// Text is the cast body text
	Text string `gorm:"column:text;not null;default:'';type:text"`
	// Embeds holds the embedded URLs and quoted casts as JSON
	Embeds datatypes.JSON `gorm:"column:embeds;type:jsonb"`
	// Mentions is the list of mentioned fids as JSON
	Mentions datatypes.JSON `gorm:"column:mentions;type:jsonb"`
	// MentionsPositions holds the byte offsets of each mention as JSON
	MentionsPositions datatypes.JSON `gorm:"column:mentions_positions;type:jsonb"`
	// ParentURL is set when the cast replies to an off-network URL
	ParentURL string `gorm:"column:parent_url;not null;default:'';type:text"`
	// ParentCast identifies the replied-to cast ({fid, hash}) as JSON
	ParentCast datatypes.JSON `gorm:"column:parent_cast;type:jsonb"`
}

// TableName specifies the table name for the Cast model
func (Cast) TableName() string {
	return "casts"
}
