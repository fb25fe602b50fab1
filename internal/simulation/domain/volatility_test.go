package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeRegionTable(t *testing.T) {
	var model VolatilityModel

	cases := []struct {
		region   string
		expected float64
	}{
		{"Mazowieckie", 0.12},
		{"Śląskie", 0.18},
		{"Małopolskie", 0.15},
		{"Inne", 0.20},
		{"Pomorskie", 0.20}, // 未知区域回退
		{"", 0.20},
	}
	for _, tc := range cases {
		components := model.Compose(tc.region, 0.5, 75, nil)
		assert.InDelta(t, tc.expected, components.Regional, 1e-12, "region %q", tc.region)
	}
}

func TestComposeCombinesComponentsOrthogonally(t *testing.T) {
	var model VolatilityModel

	components := model.Compose("Mazowieckie", 0.5, 75, nil)

	assert.InDelta(t, 0.15, components.Market, 1e-12)
	assert.InDelta(t, 0.5*1.5*0.1, components.Industry, 1e-12)
	assert.InDelta(t, (1-0.75)*0.15, components.Confidence, 1e-12)

	expected := math.Sqrt(0.15*0.15 + 0.12*0.12 + components.Industry*components.Industry + components.Confidence*components.Confidence)
	assert.InDelta(t, expected, components.Effective, 1e-12)
}

func TestComposeCapsEffectiveVolatility(t *testing.T) {
	var model VolatilityModel

	// 极端行业风险 + 零置信度，合成值远超上限
	components := model.Compose("Inne", 3.0, 0, nil)
	assert.Equal(t, MaxEffectiveVolatility, components.Effective)
}

func TestComposeCustomVolatilityOverrides(t *testing.T) {
	var model VolatilityModel

	custom := 0.77
	components := model.Compose("Mazowieckie", 0.5, 75, &custom)

	// 覆盖值原样生效，不参与合成也不封顶
	assert.Equal(t, 0.77, components.Effective)
	assert.InDelta(t, 0.12, components.Regional, 1e-12)
}
