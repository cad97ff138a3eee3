package cartoon

import (
	"strings"
	"testing"
)

func baseRequest() GenerateRequest {
	return GenerateRequest{
		Description:   "a dog filing its taxes",
		StyleCategory: StyleCategoryMagazine,
		StyleName:     "The New Yorker",
		ColorMode:     ColorModeColor,
	}
}

func TestBuildPromptStyleClauses(t *testing.T) {
	cases := []struct {
		name     string
		category StyleCategory
		style    string
		want     string
	}{
		{"magazine", StyleCategoryMagazine, "The New Yorker", "in the distinct artistic style of The New Yorker magazine"},
		{"cartoonist", StyleCategoryCartoonist, "Gary Larson", "in the distinct artistic style of cartoonist Gary Larson"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest()
			req.StyleCategory = tc.category
			req.StyleName = tc.style
			got := BuildPrompt(req)
			if !strings.Contains(got, tc.want) {
				t.Fatalf("prompt missing style clause %q: %s", tc.want, got)
			}
		})
	}
}

func TestBuildPromptSignature(t *testing.T) {
	req := baseRequest()
	req.Signature = "J. Doe"
	got := BuildPrompt(req)
	if !strings.Contains(got, `"J. Doe"`) {
		t.Fatalf("prompt missing literal signature: %s", got)
	}
	if !strings.Contains(got, "bottom corner") {
		t.Fatalf("prompt missing placement instruction: %s", got)
	}

	req.Signature = "   "
	got = BuildPrompt(req)
	if strings.Contains(got, "signature") {
		t.Fatalf("blank signature must not produce a signature clause: %s", got)
	}
}

func TestBuildPromptColorClauses(t *testing.T) {
	const colorClause = "Render the cartoon in full color."
	const bwClause = "Render the cartoon in black and white."

	for _, mode := range []ColorMode{ColorModeColor, ColorModeBlackAndWhite} {
		req := baseRequest()
		req.ColorMode = mode
		got := BuildPrompt(req)
		hasColor := strings.Contains(got, colorClause)
		hasBW := strings.Contains(got, bwClause)
		if hasColor == hasBW {
			t.Fatalf("mode %s: exactly one color clause expected, got color=%v bw=%v", mode, hasColor, hasBW)
		}
		if mode == ColorModeBlackAndWhite && !hasBW {
			t.Fatalf("mode %s: wrong clause selected: %s", mode, got)
		}
	}
}

func TestBuildPromptCharacterClause(t *testing.T) {
	const clause = "Feature the character from the attached image"

	req := baseRequest()
	if got := BuildPrompt(req); strings.Contains(got, clause) {
		t.Fatalf("character clause present without a character image: %s", got)
	}

	req.Character = &SourceImage{MIMEType: "image/png", Data: []byte{1}}
	if got := BuildPrompt(req); !strings.Contains(got, clause) {
		t.Fatalf("character clause missing with character image: %s", got)
	}
}

func TestGeneratePartsOrder(t *testing.T) {
	req := baseRequest()
	parts := req.Parts()
	if len(parts) != 1 {
		t.Fatalf("expected single text part without character, got %d", len(parts))
	}
	if parts[0].Text == "" || parts[0].InlineData != nil {
		t.Fatalf("expected text part, got %+v", parts[0])
	}

	req.Character = &SourceImage{MIMEType: "image/png", Data: []byte{0x89, 0x50}}
	parts = req.Parts()
	if len(parts) != 2 {
		t.Fatalf("expected [image, text] with character, got %d parts", len(parts))
	}
	if parts[0].InlineData == nil || parts[0].InlineData.MimeType != "image/png" {
		t.Fatalf("first part must be the character image, got %+v", parts[0])
	}
	if parts[1].Text == "" {
		t.Fatalf("second part must be the composed prompt, got %+v", parts[1])
	}
}

func TestEditPartsOrderAndRawInstruction(t *testing.T) {
	req := EditRequest{
		Image:       SourceImage{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}},
		Instruction: "  add a bowler hat  ",
	}
	parts := req.Parts()
	if len(parts) != 2 {
		t.Fatalf("expected exactly two parts, got %d", len(parts))
	}
	if parts[0].InlineData == nil || parts[0].InlineData.MimeType != "image/jpeg" {
		t.Fatalf("first part must be the uploaded image, got %+v", parts[0])
	}
	if parts[1].Text != "  add a bowler hat  " {
		t.Fatalf("instruction must pass through unmodified, got %q", parts[1].Text)
	}
}

func TestGenerateValidate(t *testing.T) {
	req := baseRequest()
	req.Description = "   "
	if err := req.Validate(); err != ErrEmptyDescription {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}

	req = baseRequest()
	req.StyleName = ""
	if err := req.Validate(); err != ErrEmptyStyleName {
		t.Fatalf("expected ErrEmptyStyleName, got %v", err)
	}

	req = baseRequest()
	req.Character = &SourceImage{MIMEType: "image/png"}
	if err := req.Validate(); err != ErrEmptyImageData {
		t.Fatalf("expected ErrEmptyImageData, got %v", err)
	}

	if err := baseRequest().Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestEditValidate(t *testing.T) {
	req := EditRequest{Instruction: "do it"}
	if err := req.Validate(); err != ErrMissingImage {
		t.Fatalf("expected ErrMissingImage, got %v", err)
	}

	req = EditRequest{Image: SourceImage{MIMEType: "image/png", Data: []byte{1}}, Instruction: " "}
	if err := req.Validate(); err != ErrEmptyInstruction {
		t.Fatalf("expected ErrEmptyInstruction, got %v", err)
	}
}
