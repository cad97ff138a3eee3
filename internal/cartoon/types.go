package cartoon

import (
	"errors"
	"strings"
)

// StyleCategory classifies the requested artistic style as either a
// publication or an individual artist.
type StyleCategory string

const (
	StyleCategoryMagazine   StyleCategory = "magazine"
	StyleCategoryCartoonist StyleCategory = "cartoonist"
)

// ColorMode selects full color or black-and-white rendering.
type ColorMode string

const (
	ColorModeColor         ColorMode = "color"
	ColorModeBlackAndWhite ColorMode = "black_and_white"
)

// NormalizeStyleCategory sanitizes free-form user input into a supported
// category. Anything that is not a magazine is treated as a cartoonist.
func NormalizeStyleCategory(category string) StyleCategory {
	if strings.ToLower(strings.TrimSpace(category)) == string(StyleCategoryMagazine) {
		return StyleCategoryMagazine
	}
	return StyleCategoryCartoonist
}

// NormalizeColorMode sanitizes free-form user input into a supported mode,
// defaulting to full color.
func NormalizeColorMode(mode string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case string(ColorModeBlackAndWhite), "bw", "black-and-white":
		return ColorModeBlackAndWhite
	default:
		return ColorModeColor
	}
}

// SourceImage is an uploaded image read fully into memory.
type SourceImage struct {
	MIMEType string
	Data     []byte
}

// Validation errors surfaced to the user before any network interaction.
var (
	ErrEmptyDescription = errors.New("cartoon: scene description is required")
	ErrEmptyStyleName   = errors.New("cartoon: style name is required")
	ErrMissingImage     = errors.New("cartoon: an image to edit is required")
	ErrEmptyInstruction = errors.New("cartoon: edit instruction is required")
	ErrEmptyImageData   = errors.New("cartoon: uploaded image is empty")
)

// GenerateRequest is the immutable snapshot of the generation form at the
// moment of submission.
type GenerateRequest struct {
	Description   string
	StyleCategory StyleCategory
	StyleName     string
	Signature     string
	ColorMode     ColorMode
	Character     *SourceImage
}

// Validate rejects malformed input before the prompt composer runs. The
// composer itself never raises errors.
func (r GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(r.StyleName) == "" {
		return ErrEmptyStyleName
	}
	if r.Character != nil && len(r.Character.Data) == 0 {
		return ErrEmptyImageData
	}
	return nil
}

// EditRequest is the immutable snapshot of the edit form at submission.
type EditRequest struct {
	Image       SourceImage
	Instruction string
}

// Validate rejects malformed input before the request is composed.
func (r EditRequest) Validate() error {
	if len(r.Image.Data) == 0 {
		return ErrMissingImage
	}
	if strings.TrimSpace(r.Instruction) == "" {
		return ErrEmptyInstruction
	}
	return nil
}
