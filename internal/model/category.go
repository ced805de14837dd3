package model

// Categories is the known category set, in display order. The engine
// tolerates categories outside this set; they render with the Other style.
var Categories = []string{
	"Food",
	"Transportation",
	"Bills",
	"Entertainment",
	"Shopping",
	"Health",
	"Other",
}

// CategoryStyle is the presentation descriptor the frontend renders a
// category with. Icon names follow the lucide icon set.
type CategoryStyle struct {
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	Background string `json:"background"`
}

var categoryStyles = map[string]CategoryStyle{
	"Food":           {Icon: "coffee", Color: "green", Background: "green-100"},
	"Transportation": {Icon: "car", Color: "blue", Background: "blue-100"},
	"Entertainment":  {Icon: "film", Color: "purple", Background: "purple-100"},
	"Bills":          {Icon: "zap", Color: "orange", Background: "orange-100"},
	"Shopping":       {Icon: "shopping-bag", Color: "pink", Background: "pink-100"},
	"Health":         {Icon: "heart", Color: "red", Background: "red-100"},
	"Other":          {Icon: "more-horizontal", Color: "gray", Background: "gray-100"},
}

// StyleForCategory returns the style for a category, falling back to the
// Other style for anything outside the known set.
func StyleForCategory(category string) CategoryStyle {
	if style, ok := categoryStyles[category]; ok {
		return style
	}
	return categoryStyles["Other"]
}

// KnownCategory reports whether a category belongs to the known set.
func KnownCategory(category string) bool {
	_, ok := categoryStyles[category]
	return ok
}
