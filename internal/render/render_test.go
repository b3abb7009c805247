package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotolinks/internal/models"
)

func TestProfileRendersBlocksInOrder(t *testing.T) {
	p := &models.Profile{
		Name:     "Sarah Moon",
		Headline: "Yoga Teacher",
		Theme:    "ocean-temple",
		Blocks: []models.ProfileBlock{
			{ID: "b", Type: models.BlockTypeLink, Position: 1, Data: models.BlockData{Title: "Second"}},
			{ID: "a", Type: models.BlockTypeLink, Position: 0, Data: models.BlockData{Title: "First"}},
		},
	}

	view := Profile("sarah-moon", p)
	assert.Equal(t, "sarah-moon", view.Handle)
	assert.Equal(t, "ocean-temple", view.Theme.Key)
	require.Len(t, view.Blocks, 2)
	assert.Equal(t, "First", view.Blocks[0].Label)
	assert.Equal(t, "Second", view.Blocks[1].Label)
}

func TestProfileFallsBackToDefaultTheme(t *testing.T) {
	p := &models.Profile{Theme: "retired-theme"}
	view := Profile("x", p)
	assert.Equal(t, models.DefaultTheme, view.Theme.Key)
}

func TestProfileSkipsUnknownBlockTypes(t *testing.T) {
	p := &models.Profile{
		Blocks: []models.ProfileBlock{
			{ID: "a", Type: models.BlockTypeLink, Position: 0},
			{ID: "b", Type: "poll", Position: 1},
			{ID: "c", Type: models.BlockTypeTelegram, Position: 2, Data: models.BlockData{Phone: "sarah"}},
		},
	}

	view := Profile("x", p)
	require.Len(t, view.Blocks, 2)
	assert.Equal(t, "a", view.Blocks[0].ID)
	assert.Equal(t, "c", view.Blocks[1].ID)
}

func TestBlockFallbackLabels(t *testing.T) {
	tests := []struct {
		typ   models.BlockType
		label string
	}{
		{models.BlockTypeLink, "Link"},
		{models.BlockTypeRetreat, "Retreat"},
		{models.BlockTypeBookCall, "Book a Call"},
		{models.BlockTypeWhatsApp, "WhatsApp"},
		{models.BlockTypeTelegram, "Telegram"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			v, ok := Block(models.ProfileBlock{ID: "x", Type: tt.typ})
			require.True(t, ok)
			assert.Equal(t, tt.label, v.Label)
		})
	}
}

func TestBlockTitleOverridesFallback(t *testing.T) {
	v, ok := Block(models.ProfileBlock{
		Type: models.BlockTypeBookCall,
		Data: models.BlockData{Title: "Free Discovery Call", URL: "https://calendly.com/x"},
	})
	require.True(t, ok)
	assert.Equal(t, "Free Discovery Call", v.Label)
	assert.Equal(t, "https://calendly.com/x", v.Href)
}

func TestBlockTestimonialFallbacks(t *testing.T) {
	v, ok := Block(models.ProfileBlock{Type: models.BlockTypeTestimonial})
	require.True(t, ok)
	assert.Equal(t, "Testimonial", v.Quote)
	assert.Equal(t, "Anonymous", v.Name)

	v, ok = Block(models.ProfileBlock{
		Type: models.BlockTypeTestimonial,
		Data: models.BlockData{Quote: "Life changing retreat", Name: "Anna K."},
	})
	require.True(t, ok)
	assert.Equal(t, "Life changing retreat", v.Quote)
	assert.Equal(t, "Anna K.", v.Name)
}

func TestBlockRetreatCarriesDetails(t *testing.T) {
	v, ok := Block(models.ProfileBlock{
		Type: models.BlockTypeRetreat,
		Data: models.BlockData{
			Title:     "Bali Bliss Retreat",
			DateRange: "March 15-22, 2025",
			Location:  "Ubud, Bali",
			URL:       "https://example.com/bali",
		},
	})
	require.True(t, ok)
	assert.Equal(t, "Bali Bliss Retreat", v.Label)
	assert.Equal(t, "March 15-22, 2025", v.DateRange)
	assert.Equal(t, "Ubud, Bali", v.Location)
	assert.Equal(t, "https://example.com/bali", v.Href)
}

func TestWhatsAppLinkStripsNonDigits(t *testing.T) {
	assert.Equal(t, "https://wa.me/15551234567", WhatsAppLink("+1 (555) 123-4567"))
	assert.Equal(t, "https://wa.me/", WhatsAppLink("no digits"))
}

func TestTelegramLinkVerbatim(t *testing.T) {
	assert.Equal(t, "https://t.me/+1 (555) 123-4567", TelegramLink("+1 (555) 123-4567"))
	assert.Equal(t, "https://t.me/sarahmoon", TelegramLink("sarahmoon"))
}
