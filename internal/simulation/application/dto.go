package application

import (
	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/domain"
)

// PercentilesDTO 价格分位数
type PercentilesDTO struct {
	P5  float64 `json:"p5"`
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P95 float64 `json:"p95"`
}

// RiskMetricsDTO 风险指标
type RiskMetricsDTO struct {
	VaR95          float64 `json:"var_95"`
	CVaR95         float64 `json:"cvar_95"`
	Interpretation string  `json:"interpretation"`
}

// ConfidenceIntervalDTO 均值的 95% 置信区间
type ConfidenceIntervalDTO struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// SimulationQualityDTO 模拟质量元数据
type SimulationQualityDTO struct {
	Simulations      int     `json:"n_simulations"`
	ConvergenceScore float64 `json:"convergence_score"`
}

// HistogramDTO 可视化直方图
type HistogramDTO struct {
	Bins   []float64 `json:"bins"`
	Counts []int     `json:"counts"`
}

// DistributionDTO 模拟结果的分布摘要，价格保留两位小数，收敛分保留四位
type DistributionDTO struct {
	MeanPrice          float64               `json:"mean_price"`
	MedianPrice        float64               `json:"median_price"`
	StdDev             float64               `json:"std_dev"`
	Percentiles        PercentilesDTO        `json:"percentiles"`
	RiskMetrics        RiskMetricsDTO        `json:"risk_metrics"`
	ConfidenceInterval ConfidenceIntervalDTO `json:"confidence_interval_95"`
	SimulationQuality  SimulationQualityDTO  `json:"simulation_quality"`
	Histogram          HistogramDTO          `json:"histogram"`
}

// SimulateDTO 模拟响应：分布摘要 + 确定性报价回显
type SimulateDTO struct {
	DistributionDTO
	DeterministicPrice float64 `json:"deterministic_price"`
	AIScore            float64 `json:"ai_score"`
	PriorityLevel      string  `json:"priority_level"`
}

// ScenarioDTO 单个情景
type ScenarioDTO struct {
	Price       float64 `json:"price"`
	Probability string  `json:"probability"`
	Description string  `json:"description"`
}

// PriceRangeDTO 价格带
type PriceRangeDTO struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Spread    float64 `json:"spread"`
	SpreadPct float64 `json:"spread_pct"`
}

// ScenarioAnalysisDTO 三情景响应
type ScenarioAnalysisDTO struct {
	BestCase     ScenarioDTO   `json:"best_case"`
	ExpectedCase ScenarioDTO   `json:"expected_case"`
	WorstCase    ScenarioDTO   `json:"worst_case"`
	PriceRange   PriceRangeDTO `json:"price_range"`
}

// SensitivityDTO 敏感性分析响应
type SensitivityDTO struct {
	DeterministicPrice float64                            `json:"deterministic_price"`
	AIScore            float64                            `json:"ai_score"`
	Baseline           *DistributionDTO                   `json:"baseline"`
	Sensitivities      map[string]domain.SensitivityEntry `json:"sensitivities"`
}

func toDistributionDTO(result *domain.SimulationResult) *DistributionDTO {
	bins := make([]float64, len(result.Histogram.Edges))
	for i, edge := range result.Histogram.Edges {
		bins[i] = round2(edge)
	}
	return &DistributionDTO{
		MeanPrice:   round2(result.Mean),
		MedianPrice: round2(result.Median),
		StdDev:      round2(result.Std),
		Percentiles: PercentilesDTO{
			P5:  round2(result.P5),
			P25: round2(result.P25),
			P50: round2(result.P50),
			P75: round2(result.P75),
			P95: round2(result.P95),
		},
		RiskMetrics: RiskMetricsDTO{
			VaR95:          round2(result.VaR95),
			CVaR95:         round2(result.CVaR95),
			Interpretation: result.RiskInterpretation,
		},
		ConfidenceInterval: ConfidenceIntervalDTO{
			Lower: round2(result.CILower),
			Upper: round2(result.CIUpper),
		},
		SimulationQuality: SimulationQualityDTO{
			Simulations:      result.N,
			ConvergenceScore: domain.RoundTo(result.Convergence, 4),
		},
		Histogram: HistogramDTO{
			Bins:   bins,
			Counts: result.Histogram.Counts,
		},
	}
}

func toScenarioAnalysisDTO(set *domain.ScenarioSet) *ScenarioAnalysisDTO {
	return &ScenarioAnalysisDTO{
		BestCase: ScenarioDTO{
			Price:       round2(set.Best.Price),
			Probability: set.Best.Probability,
			Description: set.Best.Description,
		},
		ExpectedCase: ScenarioDTO{
			Price:       round2(set.Expected.Price),
			Probability: set.Expected.Probability,
			Description: set.Expected.Description,
		},
		WorstCase: ScenarioDTO{
			Price:       round2(set.Worst.Price),
			Probability: set.Worst.Probability,
			Description: set.Worst.Description,
		},
		PriceRange: PriceRangeDTO{
			Min:       round2(set.Range.Min),
			Max:       round2(set.Range.Max),
			Spread:    round2(set.Range.Spread),
			SpreadPct: set.Range.SpreadPct,
		},
	}
}

func round2(v float64) float64 { return domain.RoundTo(v, 2) }
