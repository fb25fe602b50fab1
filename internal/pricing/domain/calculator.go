// Package domain 包含定价上下文的领域模型：确定性报价、评分与优先级
package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// PriorityLevel 客户优先级
type PriorityLevel string

const (
	PriorityLow      PriorityLevel = "LOW"
	PriorityStandard PriorityLevel = "STANDARD"
	PriorityVIP      PriorityLevel = "VIP"
)

// 定价常量
const (
	// PricePerEmployee 每员工基准单价 (PLN)
	PricePerEmployee = 100.0
	// PremiumMultiplier 48 小时加急交付加价
	PremiumMultiplier = 1.20
	// VIPDiscount VIP 客户折扣
	VIPDiscount = 0.05
	// DefaultIndustryRisk 公司或行业缺失时的回退风险因子
	DefaultIndustryRisk = 0.5
)

// regionMultiplier 区域价格系数，未知区域按 1.0
var regionMultiplier = map[string]float64{
	"Mazowieckie": 1.20,
	"Śląskie":     1.10,
	"Małopolskie": 1.05,
	"Inne":        1.00,
}

// ScoringRules 规则评分的可配置项。
// CumulativeTiers 控制员工规模加分的叠加方式：
// true 时 ≥100 加 15、≥200 再加 10；false 时仅取最高档。
type ScoringRules struct {
	CumulativeTiers bool `mapstructure:"cumulative_tiers"`
}

// QuoteInput 确定性报价输入
type QuoteInput struct {
	Employees     int
	Region        string
	Premium       bool
	AvgOrderValue float64
	OffersCount   int
	IndustryRisk  float64
}

// Quote 确定性报价结果。
// AIScore 是模型分与规则分的加权融合 (0.7 / 0.3)。
type Quote struct {
	BasePrice  decimal.Decimal
	FinalPrice decimal.Decimal
	RuleScore  float64
	ModelScore float64
	AIScore    float64
	Priority   PriorityLevel
}

// Calculator 确定性报价计算器
type Calculator struct {
	rules ScoringRules
}

// NewCalculator 创建计算器
func NewCalculator(rules ScoringRules) *Calculator {
	return &Calculator{rules: rules}
}

// Quote 计算确定性报价：
// 员工数定基价，再依次应用规模折扣、区域系数与加急加价；
// 融合评分决定优先级，VIP 享受 5% 终价折扣。
func (c *Calculator) Quote(in QuoteInput) *Quote {
	base := PricePerEmployee * float64(in.Employees)
	price := base * (1 - volumeDiscount(in.Employees))

	if m, ok := regionMultiplier[in.Region]; ok {
		price *= m
	}
	if in.Premium {
		price *= PremiumMultiplier
	}

	rule := c.ruleScore(in)
	model := modelScore(in)
	ai := 0.7*model + 0.3*rule
	priority := priorityFor(ai)

	if priority == PriorityVIP {
		price *= 1 - VIPDiscount
	}

	return &Quote{
		BasePrice:  decimal.NewFromFloat(base).Round(2),
		FinalPrice: decimal.NewFromFloat(price).Round(2),
		RuleScore:  rule,
		ModelScore: model,
		AIScore:    ai,
		Priority:   priority,
	}
}

// volumeDiscount 员工规模折扣档位
func volumeDiscount(employees int) float64 {
	switch {
	case employees > 200:
		return 0.15
	case employees > 50:
		return 0.10
	case employees > 10:
		return 0.05
	default:
		return 0
	}
}

// ruleScore 业务规则评分，基准 50 分
func (c *Calculator) ruleScore(in QuoteInput) float64 {
	score := 50.0

	if c.rules.CumulativeTiers {
		if in.Employees >= 100 {
			score += 15
		}
		if in.Employees >= 200 {
			score += 10
		}
	} else {
		switch {
		case in.Employees >= 200:
			score += 10
		case in.Employees >= 100:
			score += 15
		}
	}

	if in.Premium {
		score += 10
	}
	if in.Region == "Mazowieckie" {
		score += 5
	}
	if in.AvgOrderValue > 20000 {
		score += 10
	}
	if in.OffersCount >= 3 {
		score += 5
	}
	return clampScore(score)
}

// modelScore 盈利潜力线性模型评分
func modelScore(in QuoteInput) float64 {
	premium := 0.0
	if in.Premium {
		premium = 1
	}
	score := float64(in.Employees)/500*30 +
		premium*10 +
		in.AvgOrderValue/50000*40 +
		float64(in.OffersCount)*2 -
		in.IndustryRisk*20
	return clampScore(score)
}

func clampScore(score float64) float64 {
	return math.Min(100, math.Max(0, score))
}

// priorityFor 融合评分映射到优先级
func priorityFor(score float64) PriorityLevel {
	switch {
	case score <= 40:
		return PriorityLow
	case score <= 70:
		return PriorityStandard
	default:
		return PriorityVIP
	}
}
