package domain

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// 参数校验错误
var (
	ErrInvalidBasePrice   = errors.New("base price must be positive")
	ErrInvalidSampleCount = errors.New("simulation count must be positive")
)

// SimulationInput 一次模拟的全部输入
type SimulationInput struct {
	BasePrice        float64
	Employees        int
	Region           string
	IndustryRisk     float64
	AIScore          float64
	Premium          bool
	CustomVolatility *float64
	N                int
}

// SensitivityEntry 单个扰动相对基线的变化 (百分比，保留两位)
type SensitivityEntry struct {
	MeanChangePct float64 `json:"mean_change"`
	StdChangePct  float64 `json:"std_change"`
}

// SensitivityResult 敏感性分析输出: 基线摘要 + 各扰动的相对变化
type SensitivityResult struct {
	Baseline  *SimulationResult
	Scenarios map[string]SensitivityEntry
}

// Engine 蒙特卡洛定价引擎。
// 持有唯一的随机数生成器，互斥锁保证并发调用下随机流不交叠；
// 同一引擎内的连续模拟 (如敏感性分析的多次重跑) 共享同一随机流。
type Engine struct {
	vol VolatilityModel

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine 创建固定种子的引擎，相同种子与输入给出完全一致的结果
func NewEngine(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed))}
}

// NewEngineFromEntropy 创建以当前时间播种的引擎
func NewEngineFromEntropy() *Engine {
	return NewEngine(time.Now().UnixNano())
}

// SimulatePrice 合成波动率、采样并归约为统计摘要
func (e *Engine) SimulatePrice(input SimulationInput) (*SimulationResult, error) {
	if input.BasePrice <= 0 {
		return nil, ErrInvalidBasePrice
	}
	if input.N <= 0 {
		return nil, ErrInvalidSampleCount
	}

	components := e.vol.Compose(input.Region, input.IndustryRisk, input.AIScore, input.CustomVolatility)

	e.mu.Lock()
	samples := NewSampler(e.rng).Sample(input.BasePrice, input.Employees, input.Premium, components.Effective, input.N)
	e.mu.Unlock()

	result := Reduce(samples)
	result.Volatility = components
	return result, nil
}

// ScenarioAnalysis 模拟并给出三情景视图
func (e *Engine) ScenarioAnalysis(input SimulationInput) (*SimulationResult, *ScenarioSet, error) {
	result, err := e.SimulatePrice(input)
	if err != nil {
		return nil, nil, err
	}
	return result, AnalyzeScenarios(result), nil
}

// SensitivityAnalysis 对关键输入做单因子扰动并度量均值/标准差相对基线的变化。
//   - 员工数 ±20%: 员工数取整且至少为 1，基准价按 0.8 的弹性同步缩放
//   - 波动率覆盖为 10% / 30%
//
// 各次重跑共享引擎随机流，扰动间的差异包含采样噪声，结果解读为量级而非精确值。
func (e *Engine) SensitivityAnalysis(input SimulationInput) (*SensitivityResult, error) {
	baseline, err := e.SimulatePrice(input)
	if err != nil {
		return nil, err
	}

	scenarios := make(map[string]SensitivityEntry, 4)

	for _, change := range []float64{-0.2, 0.2} {
		perturbed := input
		perturbed.Employees = max(1, int(float64(input.Employees)*(1+change)))
		perturbed.BasePrice = input.BasePrice * (1 + change*0.8)

		result, err := e.SimulatePrice(perturbed)
		if err != nil {
			return nil, err
		}
		key := "employees_+20%"
		if change < 0 {
			key = "employees_-20%"
		}
		scenarios[key] = relativeChange(baseline, result)
	}

	for _, vol := range []float64{0.10, 0.30} {
		v := vol
		perturbed := input
		perturbed.CustomVolatility = &v

		result, err := e.SimulatePrice(perturbed)
		if err != nil {
			return nil, err
		}
		key := "volatility_10%"
		if vol > 0.2 {
			key = "volatility_30%"
		}
		scenarios[key] = relativeChange(baseline, result)
	}

	return &SensitivityResult{Baseline: baseline, Scenarios: scenarios}, nil
}

func relativeChange(baseline, result *SimulationResult) SensitivityEntry {
	entry := SensitivityEntry{}
	if baseline.Mean != 0 {
		entry.MeanChangePct = RoundTo((result.Mean-baseline.Mean)/baseline.Mean*100, 2)
	}
	if baseline.Std != 0 {
		entry.StdChangePct = RoundTo((result.Std-baseline.Std)/baseline.Std*100, 2)
	}
	return entry
}
