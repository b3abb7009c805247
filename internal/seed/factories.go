package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gotolinks/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildCreator constructs a random user with a populated profile but does not
// persist either.
func (f *Factory) BuildCreator() (*models.User, *models.Profile) {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	handle := f.handleFor(first, last)

	user := &models.User{
		ID:        uuid.New().String(),
		Email:     gofakeit.Email(),
		FirstName: first,
		LastName:  last,
		Handle:    handle,
		Plan:      f.randomPlan(),
	}

	themes := models.Themes()
	profile := &models.Profile{
		ID:       uuid.New().String(),
		UserID:   user.ID,
		Name:     first + " " + last,
		Headline: gofakeit.JobTitle(),
		Bio:      gofakeit.Sentence(12),
		PhotoURL: fmt.Sprintf("https://picsum.photos/seed/%s/400/400", handle),
		Location: gofakeit.City(),
		Theme:    themes[f.rnd.Intn(len(themes))].Key,
	}

	blockCount := 1 + f.rnd.Intn(5)
	for i := 0; i < blockCount; i++ {
		profile.Blocks = append(profile.Blocks, f.buildBlock(i))
	}

	return user, profile
}

// CreateCreator persists a random user with a populated profile.
func (f *Factory) CreateCreator() (*models.User, *models.Profile, error) {
	user, profile := f.BuildCreator()
	if err := f.db.Create(user).Error; err != nil {
		return nil, nil, err
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

// buildBlock returns a random block at the given position. Every block type
// shows up over enough draws.
func (f *Factory) buildBlock(position int) models.ProfileBlock {
	types := models.BlockTypes()
	t := types[f.rnd.Intn(len(types))]

	block := models.ProfileBlock{
		ID:       uuid.New().String(),
		Type:     t,
		Position: position,
	}

	switch t {
	case models.BlockTypeLink:
		block.Data = models.BlockData{
			Title: gofakeit.Sentence(3),
			URL:   gofakeit.URL(),
		}
	case models.BlockTypeRetreat:
		start := gofakeit.DateRange(time.Now(), time.Now().AddDate(0, 6, 0))
		block.Data = models.BlockData{
			Title:     gofakeit.Sentence(3) + " Retreat",
			DateRange: fmt.Sprintf("%s - %s", start.Format("Jan 2"), start.AddDate(0, 0, 5).Format("Jan 2, 2006")),
			Location:  gofakeit.City(),
			URL:       gofakeit.URL(),
		}
	case models.BlockTypeBookCall:
		block.Data = models.BlockData{
			Title: "Book a Call",
			URL:   "https://calendly.com/" + gofakeit.Username(),
		}
	case models.BlockTypeWhatsApp:
		block.Data = models.BlockData{
			Phone: gofakeit.Phone(),
		}
	case models.BlockTypeTelegram:
		block.Data = models.BlockData{
			Phone: gofakeit.Username(),
		}
	case models.BlockTypeTestimonial:
		block.Data = models.BlockData{
			Name:  gofakeit.FirstName() + " " + gofakeit.LetterN(1) + ".",
			Quote: gofakeit.Sentence(14),
		}
	}

	return block
}

// handleFor derives a handle that passes handle validation: lowercase letters,
// digits and hyphens, 3 to 30 characters, unique via a numeric suffix.
func (f *Factory) handleFor(first, last string) string {
	base := strings.ToLower(first + "-" + last)
	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	handle := b.String()
	if len(handle) > 24 {
		handle = handle[:24]
	}
	for len(handle) < 3 {
		handle += "x"
	}
	return fmt.Sprintf("%s-%d", handle, f.rnd.Intn(10000))
}

func (f *Factory) randomPlan() models.Plan {
	if f.rnd.Intn(5) == 0 {
		return models.PlanPro
	}
	return models.PlanFree
}
