package gemini

import "encoding/base64"

// TextPart wraps a prompt string as a request part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// ImagePart encodes raw image bytes as an inline-data part. The bytes must
// already be fully read into memory; the encoding happens once per request
// and the part is discarded when the request completes.
func ImagePart(mimeType string, data []byte) Part {
	return Part{InlineData: &InlineData{
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}
}
