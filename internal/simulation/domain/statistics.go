package domain

import (
	"math"
	"sort"
)

// HistogramBins 价格分布直方图的分箱数
const HistogramBins = 30

// 变异系数风险阈值
const (
	cvLowRisk      = 0.10
	cvModerateRisk = 0.20
	cvElevatedRisk = 0.30
)

// Histogram 等宽直方图，Edges 比 Counts 多一个元素，末箱右闭
type Histogram struct {
	Counts []int     `json:"counts"`
	Edges  []float64 `json:"bin_edges"`
}

// SimulationResult 一次蒙特卡洛模拟的统计摘要
type SimulationResult struct {
	N      int
	Mean   float64
	Median float64
	Std    float64 // 总体标准差
	Min    float64
	Max    float64

	P5  float64
	P25 float64
	P50 float64
	P75 float64
	P95 float64

	// VaR95 = mean − P5，CVaR95 = mean − E[X | X ≤ P5]
	VaR95  float64
	CVaR95 float64

	// 95% 置信区间 mean ± 1.96·σ/√n
	CILower float64
	CIUpper float64

	// Convergence 前后半段均值的一致性评分，均值为零时记 0 (无收敛证据)
	Convergence float64

	CV                 float64
	RiskInterpretation string

	Histogram Histogram

	Volatility VolatilityComponents
}

// Reduce 将样本归约为统计摘要
func Reduce(samples []float64) *SimulationResult {
	n := len(samples)
	sorted := make([]float64, n)
	copy(sorted, samples)
	sort.Float64s(sorted)

	mean := meanOf(samples)
	std := stdOf(samples, mean)

	p5 := percentileSorted(sorted, 5)
	cvar := mean - lowerTailMean(sorted, p5)
	if math.IsNaN(cvar) {
		cvar = mean - p5
	}

	halfWidth := 1.96 * std / math.Sqrt(float64(n))

	cv := 0.0
	if mean > 0 {
		cv = std / mean
	}

	return &SimulationResult{
		N:                  n,
		Mean:               mean,
		Median:             percentileSorted(sorted, 50),
		Std:                std,
		Min:                sorted[0],
		Max:                sorted[n-1],
		P5:                 p5,
		P25:                percentileSorted(sorted, 25),
		P50:                percentileSorted(sorted, 50),
		P75:                percentileSorted(sorted, 75),
		P95:                percentileSorted(sorted, 95),
		VaR95:              mean - p5,
		CVaR95:             cvar,
		CILower:            mean - halfWidth,
		CIUpper:            mean + halfWidth,
		Convergence:        convergenceScore(samples),
		CV:                 cv,
		RiskInterpretation: interpretRisk(cv),
		Histogram:          buildHistogram(samples, sorted[0], sorted[n-1]),
	}
}

func meanOf(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdOf 总体标准差 (除以 n)
func stdOf(xs []float64, mean float64) float64 {
	sum := 0.0
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// percentileSorted 线性插值分位数，入参必须已升序排序
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// lowerTailMean 计算 ≤ threshold 的样本均值，无命中时返回 NaN
func lowerTailMean(sorted []float64, threshold float64) float64 {
	sum, count := 0.0, 0
	for _, x := range sorted {
		if x > threshold {
			break
		}
		sum += x
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// convergenceScore 前后半段均值一致性: 1 − |m1−m2|/|m|。
// 样本不足两个或均值为零时没有收敛证据，记 0。
func convergenceScore(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	mean := meanOf(samples)
	if mean == 0 {
		return 0
	}
	half := len(samples) / 2
	m1 := meanOf(samples[:half])
	m2 := meanOf(samples[half:])
	return 1 - math.Abs(m1-m2)/math.Abs(mean)
}

func buildHistogram(samples []float64, min, max float64) Histogram {
	lo, hi := min, max
	if lo == hi {
		// 退化分布也给出非零宽度的区间
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / HistogramBins

	edges := make([]float64, HistogramBins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[HistogramBins] = hi

	counts := make([]int, HistogramBins)
	for _, x := range samples {
		idx := int((x - lo) / width)
		if idx >= HistogramBins {
			idx = HistogramBins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}
	return Histogram{Counts: counts, Edges: edges}
}

// RoundTo 四舍五入到 places 位小数
func RoundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// interpretRisk 基于变异系数的定价风险解读
func interpretRisk(cv float64) string {
	switch {
	case cv < cvLowRisk:
		return "LOW_RISK - High pricing confidence"
	case cv < cvModerateRisk:
		return "MODERATE_RISK - Normal pricing variance"
	case cv < cvElevatedRisk:
		return "ELEVATED_RISK - Consider price review"
	default:
		return "HIGH_RISK - Significant uncertainty"
	}
}
