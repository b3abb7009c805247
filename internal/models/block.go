package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// BlockType discriminates the content block variants a profile can carry.
type BlockType string

const (
	// BlockTypeLink is a plain titled hyperlink.
	BlockTypeLink BlockType = "link"
	// BlockTypeRetreat advertises a retreat with dates, location and booking URL.
	BlockTypeRetreat BlockType = "retreat"
	// BlockTypeBookCall links to a scheduling page.
	BlockTypeBookCall BlockType = "book-call"
	// BlockTypeWhatsApp deep-links into a WhatsApp conversation.
	BlockTypeWhatsApp BlockType = "whatsapp"
	// BlockTypeTelegram deep-links into a Telegram conversation.
	BlockTypeTelegram BlockType = "telegram"
	// BlockTypeTestimonial shows an attributed quote.
	BlockTypeTestimonial BlockType = "testimonial"
)

// BlockTypes lists every supported block type in a stable order.
func BlockTypes() []BlockType {
	return []BlockType{
		BlockTypeLink,
		BlockTypeRetreat,
		BlockTypeBookCall,
		BlockTypeWhatsApp,
		BlockTypeTelegram,
		BlockTypeTestimonial,
	}
}

// Valid reports whether the type is one of the supported variants.
func (t BlockType) Valid() bool {
	switch t {
	case BlockTypeLink, BlockTypeRetreat, BlockTypeBookCall,
		BlockTypeWhatsApp, BlockTypeTelegram, BlockTypeTestimonial:
		return true
	}
	return false
}

// BlockData is the persisted payload of a block. Which fields are
// meaningful depends on the owning block's type; the per-type contract is
// enforced by the validation package at the input boundary and by the
// render package at the output boundary.
type BlockData struct {
	Title     string `json:"title,omitempty"`
	URL       string `json:"url,omitempty"`
	DateRange string `json:"date_range,omitempty"`
	Location  string `json:"location,omitempty"`
	Name      string `json:"name,omitempty"`
	Quote     string `json:"quote,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// Value implements driver.Valuer so GORM stores the payload as JSON text.
func (d BlockData) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for the JSON payload column.
func (d *BlockData) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = BlockData{}
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported block data column type %T", src)
	}
}

// BlockDataPatch is a partial payload update. Nil fields are left untouched;
// non-nil fields overwrite, including overwriting with the empty string.
type BlockDataPatch struct {
	Title     *string `json:"title,omitempty"`
	URL       *string `json:"url,omitempty"`
	DateRange *string `json:"date_range,omitempty"`
	Location  *string `json:"location,omitempty"`
	Name      *string `json:"name,omitempty"`
	Quote     *string `json:"quote,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// Apply merges the patch into data, field by field.
func (p BlockDataPatch) Apply(data BlockData) BlockData {
	if p.Title != nil {
		data.Title = *p.Title
	}
	if p.URL != nil {
		data.URL = *p.URL
	}
	if p.DateRange != nil {
		data.DateRange = *p.DateRange
	}
	if p.Location != nil {
		data.Location = *p.Location
	}
	if p.Name != nil {
		data.Name = *p.Name
	}
	if p.Quote != nil {
		data.Quote = *p.Quote
	}
	if p.Phone != nil {
		data.Phone = *p.Phone
	}
	return data
}

// ProfileBlock is one ordered content unit on a profile page. The id is
// stable across reorders and never reused within the profile's lifetime;
// the type is immutable after creation (delete and recreate to change it).
type ProfileBlock struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ProfileID string    `gorm:"size:36;not null;index" json:"-"`
	Type      BlockType `gorm:"type:varchar(20);not null" json:"type"`
	Position  int       `gorm:"not null" json:"order"`
	Data      BlockData `gorm:"type:text" json:"data"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (ProfileBlock) TableName() string {
	return "profile_blocks"
}
