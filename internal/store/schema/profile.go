package schema

import (
	"time"

	"github.com/castlight/hub-indexer/internal/domain"
)

// Profile represents the profiles table - the denormalized per-account
// summary maintained from link and user data messages. Rows are created
// on first reference and never deleted. Counters are adjusted with
// server-side increment expressions and may go negative when deletes are
// observed before their creates.
type Profile struct {
	// Fid is the account identifier, natural primary key
	Fid domain.Fid `gorm:"column:fid;primaryKey;type:bigint"`
	// Username is the account's registered name
	Username string `gorm:"column:username;not null;default:'';type:varchar(256);index"`
	// DisplayName is the free-form display name
	DisplayName string `gorm:"column:display_name;not null;default:'';type:varchar(256)"`
	// Bio is the profile biography text
	Bio string `gorm:"column:bio;not null;default:'';type:text"`
	// AvatarURL points at the profile picture
	AvatarURL string `gorm:"column:avatar_url;not null;default:'';type:varchar(1024)"`
	// FollowerCount is the number of accounts following this one
	FollowerCount int64 `gorm:"column:follower_count;not null;default:0;index"`
	// FollowingCount is the number of accounts this one follows
	FollowingCount int64 `gorm:"column:following_count;not null;default:0;index"`
	// Banned is the moderation flag; set operationally, never by the stream
	Banned bool `gorm:"column:banned;not null;default:false"`
	// CreatedAt is when this row was first referenced
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is when this row was last touched
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
