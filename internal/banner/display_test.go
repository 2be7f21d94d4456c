package banner

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idSet(ids ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func TestShouldDisplay_IncludeWinsOverExclude(t *testing.T) {
	cfg := DisplayConfig{
		IncludeIDs: idSet("a", "b"),
		ExcludeIDs: idSet("a"),
	}

	assert.True(t, cfg.ShouldDisplay(Item{ID: "a"}), "include set makes the exclude set inert")
	assert.True(t, cfg.ShouldDisplay(Item{ID: "b"}))
	assert.False(t, cfg.ShouldDisplay(Item{ID: "c"}))
}

func TestShouldDisplay_ExcludeOnly(t *testing.T) {
	cfg := DisplayConfig{ExcludeIDs: idSet("x")}

	assert.False(t, cfg.ShouldDisplay(Item{ID: "x"}))
	assert.True(t, cfg.ShouldDisplay(Item{ID: "y"}))
}

func TestShouldDisplay_NoRestriction(t *testing.T) {
	assert.True(t, DisplayConfig{}.ShouldDisplay(Item{ID: "anything"}))
}

func TestTypeOf(t *testing.T) {
	cfg := DisplayConfig{
		TypeOverrides: map[string]BannerType{"special": TypeWellness},
	}

	assert.Equal(t, TypeGoPaper, cfg.TypeOf(Item{ID: "a", DisplayStyle: StyleCard}))
	assert.Equal(t, TypeList, cfg.TypeOf(Item{ID: "a", DisplayStyle: StyleList}))
	assert.Equal(t, TypeStandard, cfg.TypeOf(Item{ID: "a", DisplayStyle: StyleBanner}))
	// override ignores the display style entirely
	assert.Equal(t, TypeWellness, cfg.TypeOf(Item{ID: "special", DisplayStyle: StyleCard}))
}

func TestGroup_OrderAndStability(t *testing.T) {
	cfg := DisplayConfig{Order: []BannerType{TypeList, TypeStandard}}
	items := []Item{
		{ID: "s1", DisplayStyle: StyleBanner},
		{ID: "x", DisplayStyle: StyleList},
		{ID: "y", DisplayStyle: StyleList},
	}

	sections := cfg.Group(items)
	require.Len(t, sections, 2)

	assert.Equal(t, TypeList, sections[0].Type)
	require.Len(t, sections[0].Items, 2)
	assert.Equal(t, "x", sections[0].Items[0].ID, "payload order preserved within a bucket")
	assert.Equal(t, "y", sections[0].Items[1].ID)

	assert.Equal(t, TypeStandard, sections[1].Type)
	assert.Equal(t, "s1", sections[1].Items[0].ID)
}

func TestGroup_SkipsEmptyAndUnlistedBuckets(t *testing.T) {
	cfg := DisplayConfig{Order: []BannerType{TypeWellness, TypeStandard}}
	items := []Item{
		{ID: "s1", DisplayStyle: StyleBanner},
		{ID: "c1", DisplayStyle: StyleCard}, // goPaper is not in the order, not rendered
	}

	sections := cfg.Group(items)
	require.Len(t, sections, 1)
	assert.Equal(t, TypeStandard, sections[0].Type)
}

func TestGroup_AppliesFilter(t *testing.T) {
	cfg := DisplayConfig{
		ExcludeIDs: idSet("hidden"),
		Order:      []BannerType{TypeStandard},
	}
	items := []Item{
		{ID: "hidden", DisplayStyle: StyleBanner},
		{ID: "shown", DisplayStyle: StyleBanner},
	}

	sections := cfg.Group(items)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Items, 1)
	assert.Equal(t, "shown", sections[0].Items[0].ID)
}

func TestParseDisplayConfig(t *testing.T) {
	data := []byte(`{
		"includeIds": ["a"],
		"excludeIds": ["b"],
		"typeOverrides": {"a": "wellness"},
		"displayOrder": ["wellness", "standard"]
	}`)

	cfg, err := ParseDisplayConfig(data)
	require.NoError(t, err)
	assert.Contains(t, cfg.IncludeIDs, "a")
	assert.Contains(t, cfg.ExcludeIDs, "b")
	assert.Equal(t, TypeWellness, cfg.TypeOverrides["a"])
	assert.Equal(t, []BannerType{TypeWellness, TypeStandard}, cfg.Order)
}

func TestParseDisplayConfig_RejectsUnknownType(t *testing.T) {
	_, err := ParseDisplayConfig([]byte(`{"displayOrder": ["sidebar"]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBannerType))

	_, err = ParseDisplayConfig([]byte(`{"typeOverrides": {"a": "hero"}}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBannerType))
}
