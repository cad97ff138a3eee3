package gemini

import (
	"errors"
	"fmt"
)

// ErrNoImage reports a response in which no part carried inline image data.
// Callers wrap it with a message appropriate to their flow.
var ErrNoImage = errors.New("gemini: response contains no image data")

// FirstImageDataURL scans parts in order and returns the first one carrying
// inline data, reassembled as a data URL. First match wins; the MIME type and
// payload are trusted as delivered by the service.
func FirstImageDataURL(parts []Part) (string, error) {
	for _, p := range parts {
		if p.InlineData != nil && p.InlineData.Data != "" {
			return fmt.Sprintf("data:%s;base64,%s", p.InlineData.MimeType, p.InlineData.Data), nil
		}
	}
	return "", ErrNoImage
}
