package utils

// CategoryMeta is the display metadata the app shows for a restaurant
// category chip.
type CategoryMeta struct {
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

var categoryMeta = map[string]CategoryMeta{
	"japanese":  {Emoji: "🍣", Color: "#E8505B"},
	"italian":   {Emoji: "🍝", Color: "#F3AA60"},
	"mexican":   {Emoji: "🌮", Color: "#1B9C85"},
	"korean":    {Emoji: "🍜", Color: "#9376E0"},
	"indian":    {Emoji: "🍛", Color: "#FF8400"},
	"burgers":   {Emoji: "🍔", Color: "#FFB84C"},
	"pizza":     {Emoji: "🍕", Color: "#DF2E38"},
	"cafe":      {Emoji: "☕", Color: "#A4907C"},
	"dessert":   {Emoji: "🍰", Color: "#F9B5D0"},
	"seafood":   {Emoji: "🦞", Color: "#146C94"},
	"vegan":     {Emoji: "🥗", Color: "#54B435"},
	"breakfast": {Emoji: "🥞", Color: "#FFD966"},
}

var defaultCategoryMeta = CategoryMeta{Emoji: "🍽️", Color: "#8D8DAA"}

// MetaForCategory returns the display metadata for a category. Unknown
// categories get the default, not a zero value.
func MetaForCategory(category string) CategoryMeta {
	if m, ok := categoryMeta[category]; ok {
		return m
	}
	return defaultCategoryMeta
}
