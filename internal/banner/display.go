package banner

import "github.com/pkg/errors"

// BannerType is the presentation bucket a banner renders into. The client
// picks a visual template per type.
type BannerType string

const (
	TypeStandard           BannerType = "standard"
	TypeWellness           BannerType = "wellness"
	TypeDental             BannerType = "dental"
	TypeList               BannerType = "list"
	TypeGoPaper            BannerType = "goPaper"
	TypeCommonlyUsed       BannerType = "commonlyUsed"
	TypeUnderstandYourPlan BannerType = "understandYourPlan"
)

var bannerTypes = map[string]BannerType{
	"standard":           TypeStandard,
	"wellness":           TypeWellness,
	"dental":             TypeDental,
	"list":               TypeList,
	"goPaper":            TypeGoPaper,
	"commonlyUsed":       TypeCommonlyUsed,
	"understandYourPlan": TypeUnderstandYourPlan,
}

var ErrInvalidBannerType = errors.New("invalid banner type")

// ParseBannerType validates a banner type name from configuration.
func ParseBannerType(s string) (BannerType, error) {
	if t, ok := bannerTypes[s]; ok {
		return t, nil
	}
	return "", errors.Wrap(ErrInvalidBannerType, s)
}

// DefaultOrder is the bucket sequence used when no display order is configured.
var DefaultOrder = []BannerType{
	TypeStandard,
	TypeWellness,
	TypeDental,
	TypeCommonlyUsed,
	TypeUnderstandYourPlan,
	TypeList,
	TypeGoPaper,
}

// Section is one rendered bucket: a banner type and its items in payload order.
type Section struct {
	Type  BannerType `json:"type"`
	Items []Item     `json:"items"`
}

// DisplayConfig decides which banners render, which bucket each belongs to
// and the order buckets appear in. It is pure and safe for concurrent readers.
type DisplayConfig struct {
	IncludeIDs    map[string]struct{}
	ExcludeIDs    map[string]struct{}
	TypeOverrides map[string]BannerType
	Order         []BannerType
}

// ShouldDisplay reports whether the item renders. A non-empty include set is
// the sole criterion and makes the exclude set inert; an empty include set
// means "no restriction" and the exclude set applies.
func (c DisplayConfig) ShouldDisplay(item Item) bool {
	if len(c.IncludeIDs) > 0 {
		_, ok := c.IncludeIDs[item.ID]
		return ok
	}
	_, excluded := c.ExcludeIDs[item.ID]
	return !excluded
}

// TypeOf returns the bucket for an item: explicit id override first, else
// derived from the display style. Never fails; unmapped styles are standard.
func (c DisplayConfig) TypeOf(item Item) BannerType {
	if t, ok := c.TypeOverrides[item.ID]; ok {
		return t
	}
	switch item.DisplayStyle {
	case StyleList:
		return TypeList
	case StyleCard:
		return TypeGoPaper
	default:
		return TypeStandard
	}
}

// Group filters items through ShouldDisplay, buckets them stably by TypeOf
// and emits buckets in Order. Empty buckets are skipped, never padded; types
// not named in Order are not rendered.
func (c DisplayConfig) Group(items []Item) []Section {
	buckets := make(map[BannerType][]Item)
	for _, it := range items {
		if !c.ShouldDisplay(it) {
			continue
		}
		t := c.TypeOf(it)
		buckets[t] = append(buckets[t], it)
	}

	order := c.Order
	if len(order) == 0 {
		order = DefaultOrder
	}

	sections := make([]Section, 0, len(order))
	for _, t := range order {
		if bucket, ok := buckets[t]; ok {
			sections = append(sections, Section{Type: t, Items: bucket})
		}
	}
	return sections
}

// displayConfigFile is the on-disk JSON shape of a display configuration.
type displayConfigFile struct {
	IncludeIDs    []string          `json:"includeIds"`
	ExcludeIDs    []string          `json:"excludeIds"`
	TypeOverrides map[string]string `json:"typeOverrides"`
	DisplayOrder  []string          `json:"displayOrder"`
}

// ParseDisplayConfig validates a JSON display configuration once at startup.
// Unknown banner type names are rejected here rather than defaulted at render
// time.
func ParseDisplayConfig(data []byte) (DisplayConfig, error) {
	var raw displayConfigFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return DisplayConfig{}, errors.Wrap(err, "display config")
	}

	cfg := DisplayConfig{
		IncludeIDs:    make(map[string]struct{}, len(raw.IncludeIDs)),
		ExcludeIDs:    make(map[string]struct{}, len(raw.ExcludeIDs)),
		TypeOverrides: make(map[string]BannerType, len(raw.TypeOverrides)),
	}
	for _, id := range raw.IncludeIDs {
		cfg.IncludeIDs[id] = struct{}{}
	}
	for _, id := range raw.ExcludeIDs {
		cfg.ExcludeIDs[id] = struct{}{}
	}
	for id, name := range raw.TypeOverrides {
		t, err := ParseBannerType(name)
		if err != nil {
			return DisplayConfig{}, errors.Wrapf(err, "type override for %q", id)
		}
		cfg.TypeOverrides[id] = t
	}
	for _, name := range raw.DisplayOrder {
		t, err := ParseBannerType(name)
		if err != nil {
			return DisplayConfig{}, errors.Wrap(err, "display order")
		}
		cfg.Order = append(cfg.Order, t)
	}
	return cfg, nil
}
