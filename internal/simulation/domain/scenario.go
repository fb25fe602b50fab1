package domain

// Scenario 单个情景: 价格水平 + 发生概率 + 解读
type Scenario struct {
	Price       float64 `json:"price"`
	Probability string  `json:"probability"`
	Description string  `json:"description"`
}

// PriceRange 模拟结果的价格带
type PriceRange struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Spread    float64 `json:"spread"`
	SpreadPct float64 `json:"spread_pct"`
}

// ScenarioSet 乐观/预期/悲观三情景视图
type ScenarioSet struct {
	Best     Scenario   `json:"best_case"`
	Expected Scenario   `json:"expected_case"`
	Worst    Scenario   `json:"worst_case"`
	Range    PriceRange `json:"price_range"`
}

// AnalyzeScenarios 从统计摘要构造三情景视图。
// 乐观取 P95、悲观取 P5，各自约 5% 的尾部概率；价格带取 [P5, P95]。
func AnalyzeScenarios(result *SimulationResult) *ScenarioSet {
	spread := result.P95 - result.P5
	spreadPct := 0.0
	if result.Mean != 0 {
		spreadPct = spread / result.Mean * 100
	}

	return &ScenarioSet{
		Best: Scenario{
			Price:       result.P95,
			Probability: "5%",
			Description: "Optimistic scenario - favorable market conditions",
		},
		Expected: Scenario{
			Price:       result.Mean,
			Probability: "Most likely",
			Description: "Expected outcome based on current parameters",
		},
		Worst: Scenario{
			Price:       result.P5,
			Probability: "5%",
			Description: "Pessimistic scenario - adverse conditions",
		},
		Range: PriceRange{
			Min:       result.P5,
			Max:       result.P95,
			Spread:    spread,
			SpreadPct: RoundTo(spreadPct, 1),
		},
	}
}
