package cartoon

import "strings"

// StyleOption is one selectable style presented by the UI.
type StyleOption struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

var magazineStyles = []StyleOption{
	{Key: "new_yorker", Name: "The New Yorker"},
	{Key: "punch", Name: "Punch"},
	{Key: "mad", Name: "MAD"},
	{Key: "private_eye", Name: "Private Eye"},
	{Key: "charlie_hebdo", Name: "Charlie Hebdo"},
	{Key: "national_lampoon", Name: "National Lampoon"},
}

var cartoonistStyles = []StyleOption{
	{Key: "gary_larson", Name: "Gary Larson"},
	{Key: "charles_addams", Name: "Charles Addams"},
	{Key: "quino", Name: "Quino"},
	{Key: "bill_watterson", Name: "Bill Watterson"},
	{Key: "saul_steinberg", Name: "Saul Steinberg"},
	{Key: "sempe", Name: "Jean-Jacques Sempé"},
}

// MagazineStyles returns the magazine catalog in presentation order.
func MagazineStyles() []StyleOption {
	out := make([]StyleOption, len(magazineStyles))
	copy(out, magazineStyles)
	return out
}

// CartoonistStyles returns the cartoonist catalog in presentation order.
func CartoonistStyles() []StyleOption {
	out := make([]StyleOption, len(cartoonistStyles))
	copy(out, cartoonistStyles)
	return out
}

// ResolveStyleName maps a catalog key to its display name. Unknown values
// pass through unchanged so the UI can offer custom, free-text styles.
func ResolveStyleName(category StyleCategory, value string) string {
	value = strings.TrimSpace(value)
	catalog := cartoonistStyles
	if category == StyleCategoryMagazine {
		catalog = magazineStyles
	}
	for _, opt := range catalog {
		if opt.Key == value {
			return opt.Name
		}
	}
	return value
}
