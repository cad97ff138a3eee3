package cartoon

import (
	"fmt"
	"strings"

	"cartoonlab/internal/gemini"
)

// BuildPrompt renders the generation instruction from a validated request.
// Clause order is fixed: scene, style, optional character, color, closing,
// optional signature. The style clause wording differs between magazines and
// cartoonists only in its fixed fragment.
func BuildPrompt(req GenerateRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a single-panel cartoon depicting the following scene: %s.", strings.TrimSpace(req.Description))

	style := strings.TrimSpace(req.StyleName)
	if req.StyleCategory == StyleCategoryMagazine {
		fmt.Fprintf(&b, " Draw it in the distinct artistic style of %s magazine.", style)
	} else {
		fmt.Fprintf(&b, " Draw it in the distinct artistic style of cartoonist %s.", style)
	}

	if req.Character != nil {
		b.WriteString(" Feature the character from the attached image as the main subject of the scene, keeping their likeness clearly recognizable.")
	}

	if req.ColorMode == ColorModeBlackAndWhite {
		b.WriteString(" Render the cartoon in black and white.")
	} else {
		b.WriteString(" Render the cartoon in full color.")
	}

	b.WriteString(" The cartoon should be genuinely humorous and faithful to the themes and sensibilities of that style.")

	if sig := strings.TrimSpace(req.Signature); sig != "" {
		fmt.Fprintf(&b, " Subtly place the signature %q in a bottom corner of the image.", sig)
	}

	return b.String()
}

// Parts assembles the ordered part list for a generation call: the character
// image first when present, then the single composed prompt part.
func (r GenerateRequest) Parts() []gemini.Part {
	var parts []gemini.Part
	if r.Character != nil {
		parts = append(parts, gemini.ImagePart(r.Character.MIMEType, r.Character.Data))
	}
	return append(parts, gemini.TextPart(BuildPrompt(r)))
}

// Parts assembles the edit call part list: the uploaded image followed by the
// raw user instruction, unmodified.
func (r EditRequest) Parts() []gemini.Part {
	return []gemini.Part{
		gemini.ImagePart(r.Image.MIMEType, r.Image.Data),
		gemini.TextPart(r.Instruction),
	}
}
