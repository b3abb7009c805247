// Package render builds public view models from stored profiles. It resolves
// themes, applies per-type display fallbacks, and derives messaging links.
package render

import (
	"sort"
	"strings"

	"gotolinks/internal/models"
)

// Display fallbacks applied when a block's own fields are empty.
const (
	fallbackLink        = "Link"
	fallbackRetreat     = "Retreat"
	fallbackBookCall    = "Book a Call"
	fallbackWhatsApp    = "WhatsApp"
	fallbackTelegram    = "Telegram"
	fallbackQuote       = "Testimonial"
	fallbackAttribution = "Anonymous"
)

// BlockView is the render-ready shape of one block. Only the fields relevant
// to the block's type are populated.
type BlockView struct {
	ID        string           `json:"id"`
	Type      models.BlockType `json:"type"`
	Label     string           `json:"label"`
	Href      string           `json:"href,omitempty"`
	DateRange string           `json:"date_range,omitempty"`
	Location  string           `json:"location,omitempty"`
	Quote     string           `json:"quote,omitempty"`
	Name      string           `json:"name,omitempty"`
}

// ProfileView is the full public page model for one handle.
type ProfileView struct {
	Handle   string       `json:"handle"`
	Name     string       `json:"name"`
	Headline string       `json:"headline"`
	Bio      string       `json:"bio"`
	PhotoURL string       `json:"photo_url,omitempty"`
	Location string       `json:"location,omitempty"`
	Theme    models.Theme `json:"theme"`
	Blocks   []BlockView  `json:"blocks"`
}

// Profile renders a stored profile for public display. Blocks are emitted in
// position order; blocks of unknown type are skipped rather than failing the
// whole page.
func Profile(handle string, p *models.Profile) ProfileView {
	blocks := make([]models.ProfileBlock, len(p.Blocks))
	copy(blocks, p.Blocks)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Position < blocks[j].Position
	})

	views := make([]BlockView, 0, len(blocks))
	for _, b := range blocks {
		if v, ok := Block(b); ok {
			views = append(views, v)
		}
	}

	return ProfileView{
		Handle:   handle,
		Name:     p.Name,
		Headline: p.Headline,
		Bio:      p.Bio,
		PhotoURL: p.PhotoURL,
		Location: p.Location,
		Theme:    models.ResolveTheme(p.Theme),
		Blocks:   views,
	}
}

// Block renders one block. The second return is false for unknown types.
func Block(b models.ProfileBlock) (BlockView, bool) {
	v := BlockView{ID: b.ID, Type: b.Type}

	switch b.Type {
	case models.BlockTypeLink:
		v.Label = orFallback(b.Data.Title, fallbackLink)
		v.Href = b.Data.URL
	case models.BlockTypeRetreat:
		v.Label = orFallback(b.Data.Title, fallbackRetreat)
		v.Href = b.Data.URL
		v.DateRange = b.Data.DateRange
		v.Location = b.Data.Location
	case models.BlockTypeBookCall:
		v.Label = orFallback(b.Data.Title, fallbackBookCall)
		v.Href = b.Data.URL
	case models.BlockTypeWhatsApp:
		v.Label = orFallback(b.Data.Title, fallbackWhatsApp)
		v.Href = WhatsAppLink(b.Data.Phone)
	case models.BlockTypeTelegram:
		v.Label = orFallback(b.Data.Title, fallbackTelegram)
		v.Href = TelegramLink(b.Data.Phone)
	case models.BlockTypeTestimonial:
		v.Quote = orFallback(b.Data.Quote, fallbackQuote)
		v.Name = orFallback(b.Data.Name, fallbackAttribution)
		v.Label = v.Quote
	default:
		return BlockView{}, false
	}

	return v, true
}

// WhatsAppLink builds a wa.me link. WhatsApp requires a bare number, so every
// non-digit character in the stored phone is stripped.
func WhatsAppLink(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String()
}

// TelegramLink builds a t.me link. Telegram accepts usernames as well as
// numbers, so the stored value passes through verbatim.
func TelegramLink(phone string) string {
	return "https://t.me/" + phone
}

func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
