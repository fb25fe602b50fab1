package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceBasicMoments(t *testing.T) {
	result := Reduce([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.Equal(t, 8, result.N)
	assert.InDelta(t, 5.0, result.Mean, 1e-12)
	assert.InDelta(t, 2.0, result.Std, 1e-12) // 总体标准差
	assert.Equal(t, 2.0, result.Min)
	assert.Equal(t, 9.0, result.Max)
}

func TestPercentileLinearInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	// pos = p/100 × (n−1)
	assert.InDelta(t, 10.0, percentileSorted(sorted, 0), 1e-12)
	assert.InDelta(t, 25.0, percentileSorted(sorted, 50), 1e-12)
	assert.InDelta(t, 17.5, percentileSorted(sorted, 25), 1e-12)
	assert.InDelta(t, 40.0, percentileSorted(sorted, 100), 1e-12)
	assert.InDelta(t, 11.5, percentileSorted(sorted, 5), 1e-12)
}

func TestReduceTailRiskMetrics(t *testing.T) {
	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = float64(i + 1) // 1..100
	}
	result := Reduce(samples)

	// P5 = 1 + 0.05×99 = 5.95; 尾部均值取 ≤ P5 的 {1..5}
	assert.InDelta(t, 5.95, result.P5, 1e-12)
	assert.InDelta(t, result.Mean-5.95, result.VaR95, 1e-12)
	assert.InDelta(t, result.Mean-3.0, result.CVaR95, 1e-12)
	assert.Less(t, result.VaR95, result.CVaR95)
}

func TestReduceConfidenceIntervalSymmetry(t *testing.T) {
	samples := make([]float64, 400)
	for i := range samples {
		samples[i] = 100 + float64(i%20)
	}
	result := Reduce(samples)

	assert.InDelta(t, result.Mean, (result.CILower+result.CIUpper)/2, 1e-9)
	assert.Less(t, result.CILower, result.Mean)
	assert.Greater(t, result.CIUpper, result.Mean)
}

func TestConvergenceScore(t *testing.T) {
	// 前后半段均值一致 ⇒ 满分
	assert.InDelta(t, 1.0, convergenceScore([]float64{5, 5, 5, 5}), 1e-12)
	// 单样本无法分半，没有收敛证据
	assert.Equal(t, 0.0, convergenceScore([]float64{5}))
	// 前半均值 1、后半均值 3、整体 2 ⇒ 1 − 2/2 = 0
	assert.InDelta(t, 0.0, convergenceScore([]float64{1, 1, 3, 3}), 1e-12)
	// 零均值无收敛证据
	assert.Equal(t, 0.0, convergenceScore([]float64{-1, 1, -1, 1}))
}

func TestHistogramInvariants(t *testing.T) {
	samples := make([]float64, 1000)
	for i := range samples {
		samples[i] = float64(i)
	}
	h := buildHistogram(samples, 0, 999)

	require.Len(t, h.Edges, HistogramBins+1)
	require.Len(t, h.Counts, HistogramBins)

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, len(samples), total)
	assert.Equal(t, 0.0, h.Edges[0])
	assert.Equal(t, 999.0, h.Edges[HistogramBins])
}

func TestHistogramDegenerateDistribution(t *testing.T) {
	samples := []float64{42, 42, 42}
	h := buildHistogram(samples, 42, 42)

	require.Len(t, h.Edges, HistogramBins+1)
	assert.InDelta(t, 41.5, h.Edges[0], 1e-12)
	assert.InDelta(t, 42.5, h.Edges[HistogramBins], 1e-12)

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	assert.Equal(t, 3, total)
}

func TestInterpretRiskThresholds(t *testing.T) {
	cases := []struct {
		cv       float64
		expected string
	}{
		{0.05, "LOW_RISK - High pricing confidence"},
		{0.10, "MODERATE_RISK - Normal pricing variance"},
		{0.19, "MODERATE_RISK - Normal pricing variance"},
		{0.20, "ELEVATED_RISK - Consider price review"},
		{0.30, "HIGH_RISK - Significant uncertainty"},
		{0.95, "HIGH_RISK - Significant uncertainty"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, interpretRisk(tc.cv), "cv %.2f", tc.cv)
	}
}

func TestReduceCVGuardOnNonPositiveMean(t *testing.T) {
	result := Reduce([]float64{-1, -2, -3, -4})
	assert.Equal(t, 0.0, result.CV)
	assert.Equal(t, "LOW_RISK - High pricing confidence", result.RiskInterpretation)
}

func TestAnalyzeScenarios(t *testing.T) {
	samples := make([]float64, 200)
	for i := range samples {
		samples[i] = 500 + float64(i)*5
	}
	result := Reduce(samples)
	set := AnalyzeScenarios(result)

	assert.Equal(t, result.P95, set.Best.Price)
	assert.Equal(t, result.Mean, set.Expected.Price)
	assert.Equal(t, result.P5, set.Worst.Price)
	assert.Equal(t, "5%", set.Best.Probability)
	assert.Equal(t, "Most likely", set.Expected.Probability)

	assert.Equal(t, result.P5, set.Range.Min)
	assert.Equal(t, result.P95, set.Range.Max)
	assert.InDelta(t, result.P95-result.P5, set.Range.Spread, 1e-9)
	assert.InDelta(t, RoundTo((result.P95-result.P5)/result.Mean*100, 1), set.Range.SpreadPct, 1e-9)
}
