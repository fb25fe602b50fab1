package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeDiscountTiers(t *testing.T) {
	cases := []struct {
		employees int
		expected  float64
	}{
		{1, 0},
		{10, 0},
		{11, 0.05},
		{50, 0.05},
		{51, 0.10},
		{200, 0.10},
		{201, 0.15},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, volumeDiscount(tc.employees), "employees %d", tc.employees)
	}
}

func TestQuoteBasePriceAndRegionMultiplier(t *testing.T) {
	calc := NewCalculator(ScoringRules{})

	// 10 员工无折扣，Inne 区域系数 1.0
	quote := calc.Quote(QuoteInput{Employees: 10, Region: "Inne", IndustryRisk: 0.5})
	assert.True(t, quote.BasePrice.Equal(decimal.NewFromInt(1000)), "base %s", quote.BasePrice)
	assert.True(t, quote.FinalPrice.Equal(decimal.NewFromInt(1000)), "final %s", quote.FinalPrice)

	// Mazowieckie 区域 ×1.2
	quote = calc.Quote(QuoteInput{Employees: 10, Region: "Mazowieckie", IndustryRisk: 0.5})
	assert.True(t, quote.FinalPrice.Equal(decimal.NewFromInt(1200)), "final %s", quote.FinalPrice)

	// 未知区域不加成
	quote = calc.Quote(QuoteInput{Employees: 10, Region: "Pomorskie", IndustryRisk: 0.5})
	assert.True(t, quote.FinalPrice.Equal(decimal.NewFromInt(1000)), "final %s", quote.FinalPrice)
}

func TestQuotePremiumSurcharge(t *testing.T) {
	calc := NewCalculator(ScoringRules{})

	quote := calc.Quote(QuoteInput{Employees: 10, Region: "Inne", Premium: true, IndustryRisk: 0.9})
	require.Equal(t, PriorityLow, quote.Priority)
	assert.True(t, quote.FinalPrice.Equal(decimal.NewFromInt(1200)), "final %s", quote.FinalPrice)
}

func TestQuoteVIPDiscount(t *testing.T) {
	calc := NewCalculator(ScoringRules{})

	// 大客户高价值画像触发 VIP，终价打 95 折
	in := QuoteInput{
		Employees:     300,
		Region:        "Mazowieckie",
		Premium:       true,
		AvgOrderValue: 40000,
		OffersCount:   5,
		IndustryRisk:  0.2,
	}
	quote := calc.Quote(in)
	require.Equal(t, PriorityVIP, quote.Priority)

	// 30000 × 0.85 × 1.2 × 1.2 × 0.95
	expected := decimal.NewFromFloat(30000 * 0.85 * 1.2 * 1.2 * 0.95).Round(2)
	assert.True(t, quote.FinalPrice.Equal(expected), "final %s expected %s", quote.FinalPrice, expected)
}

func TestRuleScoreTierModes(t *testing.T) {
	in := QuoteInput{Employees: 250, Region: "Inne"}

	// 叠加模式: 50 + 15 + 10
	cumulative := NewCalculator(ScoringRules{CumulativeTiers: true})
	assert.Equal(t, 75.0, cumulative.ruleScore(in))

	// 单档模式: 50 + 10 (仅 ≥200 档)
	single := NewCalculator(ScoringRules{})
	assert.Equal(t, 60.0, single.ruleScore(in))

	// 100..199 两种模式一致
	in.Employees = 150
	assert.Equal(t, 65.0, cumulative.ruleScore(in))
	assert.Equal(t, 65.0, single.ruleScore(in))
}

func TestRuleScoreBonuses(t *testing.T) {
	calc := NewCalculator(ScoringRules{CumulativeTiers: true})

	in := QuoteInput{
		Employees:     250,
		Region:        "Mazowieckie",
		Premium:       true,
		AvgOrderValue: 25000,
		OffersCount:   3,
	}
	// 50 + 15 + 10 + 10 + 5 + 10 + 5 = 105 → 封顶 100
	assert.Equal(t, 100.0, calc.ruleScore(in))
}

func TestModelScoreClamping(t *testing.T) {
	// 高风险小客户跌破下限
	low := modelScore(QuoteInput{Employees: 1, IndustryRisk: 5})
	assert.Equal(t, 0.0, low)

	// 超大客户触顶
	high := modelScore(QuoteInput{Employees: 2000, AvgOrderValue: 100000, OffersCount: 10})
	assert.Equal(t, 100.0, high)
}

func TestAIScoreFusionAndPriority(t *testing.T) {
	calc := NewCalculator(ScoringRules{})

	quote := calc.Quote(QuoteInput{Employees: 10, Region: "Inne", IndustryRisk: 0.5})
	assert.InDelta(t, 0.7*quote.ModelScore+0.3*quote.RuleScore, quote.AIScore, 1e-9)

	assert.Equal(t, PriorityLow, priorityFor(40))
	assert.Equal(t, PriorityStandard, priorityFor(40.01))
	assert.Equal(t, PriorityStandard, priorityFor(70))
	assert.Equal(t, PriorityVIP, priorityFor(70.01))
}
