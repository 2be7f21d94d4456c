package banner

import "strings"

// DefaultIconName is the sentinel icon used when a payload carries none.
const DefaultIconName = "doc.text"

// ElementDTO is a generic nested bag attached to a banner. Different upstream
// producers put the same logical value under different keys (`value`, `title`,
// a variation), so every field is optional.
type ElementDTO struct {
	Name       *string           `json:"name,omitempty"`
	Value      *string           `json:"value,omitempty"`
	Title      *string           `json:"title,omitempty"`
	Variations map[string]string `json:"variations,omitempty"`
}

// BannerDTO is the wire shape of a single banner. Only `id` is guaranteed to
// be present; everything else degrades gracefully in the mapper.
type BannerDTO struct {
	ID                 string                `json:"id"`
	Name               *string               `json:"name,omitempty"`
	Path               *string               `json:"path,omitempty"`
	Title              *string               `json:"title,omitempty"`
	ActionText         *string               `json:"actionText,omitempty"`
	HasNavigationArrow bool                  `json:"hasNavigationArrow,omitempty"`
	DisplayStyle       *string               `json:"displayStyle,omitempty"`
	Route              *string               `json:"route,omitempty"`
	Elements           map[string]ElementDTO `json:"elements,omitempty"`
}

// element returns the named sub-element, or a zero ElementDTO when absent so
// callers can chain field lookups without nil checks.
func (d BannerDTO) element(name string) ElementDTO {
	return d.Elements[name]
}

// BannerResponse is the wrapped payload shape: { "banners": [...] }.
type BannerResponse struct {
	Banners []BannerDTO `json:"banners"`
}

// DisplayStyle classifies how a banner is visually presented.
type DisplayStyle string

const (
	StyleBanner DisplayStyle = "banner"
	StyleList   DisplayStyle = "list"
	StyleCard   DisplayStyle = "card"
)

var displayStyles = map[string]DisplayStyle{
	"banner": StyleBanner,
	"list":   StyleList,
	"card":   StyleCard,
}

// ParseDisplayStyle matches a style name case-insensitively. The second
// return is false for unknown names; callers decide how to default.
func ParseDisplayStyle(s string) (DisplayStyle, bool) {
	st, ok := displayStyles[strings.ToLower(s)]
	return st, ok
}

// Item is the immutable domain representation of a banner. Items are created
// only by MapToDomain and replaced wholesale on each payload load.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Item struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Subtitle           string       `json:"subtitle"`
	IconName           string       `json:"iconName"`
	ActionText         *string      `json:"actionText,omitempty"`
	HasNavigationArrow bool         `json:"hasNavigationArrow"`
	DisplayStyle       DisplayStyle `json:"displayStyle"`
	Route              *string      `json:"route,omitempty"`
}
