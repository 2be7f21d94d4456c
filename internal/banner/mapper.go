package banner

import "strings"

// firstNonEmpty returns the first candidate that is non-nil and non-empty.
// Field resolution across the three payload shapes is just an ordered chain
// of optional sources, so every resolver below is built on this.
func firstNonEmpty(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return ""
}

// MapToDomain converts a wire DTO into a domain Item. It is total: a
// minimally-populated DTO still yields a valid Item with defaults filled in.
// The same logical field may arrive at different nesting depths depending on
// the producer, so each field resolves through a priority chain.
func MapToDomain(dto BannerDTO) Item {
	title := dto.element("title")

	return Item{
		ID:                 resolveID(dto),
		Title:              firstNonEmpty(title.Title, title.Value, dto.Title),
		Subtitle:           firstNonEmpty(dto.element("description").Value),
		IconName:           resolveIcon(dto),
		ActionText:         dto.ActionText,
		HasNavigationArrow: dto.HasNavigationArrow,
		DisplayStyle:       resolveStyle(dto),
		Route:              dto.Route,
	}
}

func resolveID(dto BannerDTO) string {
	if v := firstNonEmpty(dto.element("id").Value); v != "" {
		return v
	}
	return dto.ID
}

func resolveIcon(dto BannerDTO) string {
	if v := firstNonEmpty(dto.element("icon").Value); v != "" {
		return v
	}
	return DefaultIconName
}

// resolveStyle prefers the explicit displayStyle field (unknown names fall to
// banner). Without one, a "list" substring in path or name classifies the
// banner as a list row.
func resolveStyle(dto BannerDTO) DisplayStyle {
	if dto.DisplayStyle != nil {
		if st, ok := ParseDisplayStyle(*dto.DisplayStyle); ok {
			return st
		}
		return StyleBanner
	}
	for _, hint := range []*string{dto.Path, dto.Name} {
		if hint != nil && strings.Contains(strings.ToLower(*hint), "list") {
			return StyleList
		}
	}
	return StyleBanner
}
