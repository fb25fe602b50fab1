package domain

import (
	"math"
	"math/rand"
)

// 随机采样常量
const (
	// PremiumUncertainty 加急交付带来的执行不确定性 (标准差)
	PremiumUncertainty = 0.03
	// StressProbability 压力事件概率
	StressProbability = 0.05
	// stressLow / stressHigh 压力冲击均匀分布区间
	stressLow  = 0.7
	stressHigh = 1.3
	// PriceFloorRatio 样本下限 = 比例 × 基准价
	PriceFloorRatio = 0.1
)

// Sampler 五因子乘性冲击采样器。
// 持有注入的随机数生成器，相同种子下抽取顺序固定：
// 先整组市场冲击，再需求、成本、加急，最后逐样本压力事件。
// 未启用加急时不消耗随机流，保证同种子下两种请求的前四组序列一致。
type Sampler struct {
	rng *rand.Rand
}

// NewSampler 创建采样器
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample 生成 n 个价格样本。
//   - 市场冲击: 对数正态 exp(σ·Z)
//   - 需求冲击: N(1, 0.10/(1+ln(1+employees)/10))，规模越大需求越稳定
//   - 成本冲击: N(1, 0.08)
//   - 加急冲击: premium 时 N(1, 0.03)，否则恒为 1
//   - 压力事件: 5% 概率叠加 U(0.7, 1.3) 的极端因子
//
// 每个样本不低于 0.1 × basePrice。
func (s *Sampler) Sample(basePrice float64, employees int, premium bool, volatility float64, n int) []float64 {
	market := make([]float64, n)
	for i := range market {
		market[i] = math.Exp(volatility * s.rng.NormFloat64())
	}

	demandSigma := DemandUncertainty / (1 + math.Log1p(float64(employees))/10)
	demand := make([]float64, n)
	for i := range demand {
		demand[i] = 1 + demandSigma*s.rng.NormFloat64()
	}

	cost := make([]float64, n)
	for i := range cost {
		cost[i] = 1 + CostUncertainty*s.rng.NormFloat64()
	}

	premiumShock := make([]float64, n)
	if premium {
		for i := range premiumShock {
			premiumShock[i] = 1 + PremiumUncertainty*s.rng.NormFloat64()
		}
	} else {
		for i := range premiumShock {
			premiumShock[i] = 1
		}
	}

	floor := PriceFloorRatio * basePrice
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		// 两次抽取都无条件消耗，随机流与压力事件是否命中无关
		hit := s.rng.Float64() < StressProbability
		u := stressLow + (stressHigh-stressLow)*s.rng.Float64()
		stress := 1.0
		if hit {
			stress = u
		}

		price := basePrice * market[i] * demand[i] * cost[i] * premiumShock[i] * stress
		if price < floor {
			price = floor
		}
		samples[i] = price
	}
	return samples
}
