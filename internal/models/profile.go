package models

import "time"

// Profile is the editable unit behind a public link-in-bio page. Exactly one
// profile exists per user; the owning user's handle addresses it publicly.
type Profile struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	UserID    string         `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	Name      string         `gorm:"size:120" json:"name"`
	Headline  string         `gorm:"size:200" json:"headline"`
	Bio       string         `gorm:"type:text" json:"bio"`
	PhotoURL  string         `gorm:"size:500" json:"photo_url,omitempty"`
	Location  string         `gorm:"size:120" json:"location,omitempty"`
	Theme     string         `gorm:"size:40;not null;default:'zen-minimal'" json:"theme"`
	Blocks    []ProfileBlock `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"blocks"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}

// Clone returns a deep copy of the profile. Editor transitions operate on
// copies so a failed operation can never leave the caller's profile half
// mutated.
func (p *Profile) Clone() *Profile {
	out := *p
	out.Blocks = make([]ProfileBlock, len(p.Blocks))
	copy(out.Blocks, p.Blocks)
	return &out
}

// BlockByID returns the index of the block with the given id, or -1.
func (p *Profile) BlockByID(blockID string) int {
	for i := range p.Blocks {
		if p.Blocks[i].ID == blockID {
			return i
		}
	}
	return -1
}
