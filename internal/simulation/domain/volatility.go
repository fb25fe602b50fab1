// Package domain 包含定价风险模拟服务的领域模型
package domain

import "math"

// 波动率模型常量
const (
	// MarketVolatility 基础市场波动率
	MarketVolatility = 0.15
	// DemandUncertainty 需求不确定性 (标准差)
	DemandUncertainty = 0.10
	// CostUncertainty 成本不确定性 (标准差)
	CostUncertainty = 0.08
	// MaxEffectiveVolatility 有效波动率上限
	MaxEffectiveVolatility = 0.5
	// DefaultRegionVolatility 未知区域的回退波动率
	DefaultRegionVolatility = 0.20
)

// regionVolatility 区域 -> 区域性波动率
var regionVolatility = map[string]float64{
	"Mazowieckie": 0.12,
	"Śląskie":     0.18,
	"Małopolskie": 0.15,
	"Inne":        0.20,
}

// VolatilityComponents 分解后的波动率构成
// Effective 是各分量的平方和开方 (正交合成)，封顶 0.5；
// 当请求携带自定义波动率时 Effective 被原样覆盖，分量仍反映模型计算值。
type VolatilityComponents struct {
	Market     float64 `json:"market_volatility"`
	Regional   float64 `json:"regional_volatility"`
	Industry   float64 `json:"industry_volatility"`
	Confidence float64 `json:"confidence_volatility"`
	Effective  float64 `json:"effective_volatility"`
}

// VolatilityModel 根据区域、行业风险与模型置信度合成有效波动率
type VolatilityModel struct{}

// Compose 合成波动率分量
//   - regional: 区域查表，未知区域使用 DefaultRegionVolatility
//   - industry: 行业风险因子 × 1.5 × 0.1
//   - confidence: AI 评分越低，模型不确定性越高，(1 - score/100) × 0.15
//   - custom 不为空时直接覆盖 Effective (不参与合成、不封顶)
func (VolatilityModel) Compose(region string, industryRisk, aiScore float64, custom *float64) VolatilityComponents {
	regional, ok := regionVolatility[region]
	if !ok {
		regional = DefaultRegionVolatility
	}

	industry := industryRisk * 1.5 * 0.1
	confidence := (1 - aiScore/100) * 0.15

	effective := math.Sqrt(MarketVolatility*MarketVolatility +
		regional*regional +
		industry*industry +
		confidence*confidence)
	if effective > MaxEffectiveVolatility {
		effective = MaxEffectiveVolatility
	}
	if custom != nil {
		effective = *custom
	}

	return VolatilityComponents{
		Market:     MarketVolatility,
		Regional:   regional,
		Industry:   industry,
		Confidence: confidence,
		Effective:  effective,
	}
}
