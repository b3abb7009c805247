package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"gotolinks/internal/models"
)

const (
	maxBlockTitleLen = 200
	maxBlockQuoteLen = 1000
	maxBlockFieldLen = 200
	maxBlockURLLen   = 2048
)

// ValidateBlockType rejects unknown block types at the write boundary.
// Unknown types already stored are tolerated and skipped at render time.
func ValidateBlockType(t models.BlockType) error {
	if !t.Valid() {
		return fmt.Errorf("unknown block type %q", t)
	}
	return nil
}

// ValidateBlockData checks the fields relevant to the block's type. Fields
// are optional while a block is being drafted; set fields must be well
// formed. Fields outside the type's contract are ignored, never rejected.
func ValidateBlockData(t models.BlockType, data models.BlockData) error {
	if err := ValidateBlockType(t); err != nil {
		return err
	}

	switch t {
	case models.BlockTypeLink:
		if err := validateOptionalTitle(data.Title); err != nil {
			return err
		}
		return validateOptionalURL(data.URL)
	case models.BlockTypeRetreat:
		if err := validateOptionalTitle(data.Title); err != nil {
			return err
		}
		if len(data.DateRange) > maxBlockFieldLen {
			return fmt.Errorf("date range must not exceed %d characters", maxBlockFieldLen)
		}
		if len(data.Location) > maxBlockFieldLen {
			return fmt.Errorf("location must not exceed %d characters", maxBlockFieldLen)
		}
		return validateOptionalURL(data.URL)
	case models.BlockTypeBookCall:
		if err := validateOptionalTitle(data.Title); err != nil {
			return err
		}
		return validateOptionalURL(data.URL)
	case models.BlockTypeWhatsApp:
		if data.Phone != "" && !hasDigit(data.Phone) {
			return fmt.Errorf("whatsapp phone must contain at least one digit")
		}
		if len(data.Phone) > maxBlockFieldLen {
			return fmt.Errorf("phone must not exceed %d characters", maxBlockFieldLen)
		}
		return nil
	case models.BlockTypeTelegram:
		if len(data.Phone) > maxBlockFieldLen {
			return fmt.Errorf("phone must not exceed %d characters", maxBlockFieldLen)
		}
		return nil
	case models.BlockTypeTestimonial:
		if len(data.Quote) > maxBlockQuoteLen {
			return fmt.Errorf("quote must not exceed %d characters", maxBlockQuoteLen)
		}
		if len(data.Name) > maxBlockFieldLen {
			return fmt.Errorf("name must not exceed %d characters", maxBlockFieldLen)
		}
		return nil
	}
	return nil
}

func validateOptionalTitle(title string) error {
	if len(title) > maxBlockTitleLen {
		return fmt.Errorf("title must not exceed %d characters", maxBlockTitleLen)
	}
	return nil
}

func validateOptionalURL(raw string) error {
	if raw == "" {
		return nil
	}
	if len(raw) > maxBlockURLLen {
		return fmt.Errorf("url must not exceed %d characters", maxBlockURLLen)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must use http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("url must include a host")
	}
	return nil
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
