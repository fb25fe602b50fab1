package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleReproducibleWithSameSeed(t *testing.T) {
	a := NewSampler(rand.New(rand.NewSource(42))).Sample(1000, 50, false, 0.2, 500)
	b := NewSampler(rand.New(rand.NewSource(42))).Sample(1000, 50, false, 0.2, 500)

	require.Len(t, a, 500)
	assert.Equal(t, a, b)
}

func TestSampleDiffersAcrossSeeds(t *testing.T) {
	a := NewSampler(rand.New(rand.NewSource(1))).Sample(1000, 50, false, 0.2, 100)
	b := NewSampler(rand.New(rand.NewSource(2))).Sample(1000, 50, false, 0.2, 100)

	assert.NotEqual(t, a, b)
}

func TestSampleEnforcesPriceFloor(t *testing.T) {
	// 高波动率下大量样本会触达下限
	samples := NewSampler(rand.New(rand.NewSource(7))).Sample(1000, 5, false, 2.5, 2000)

	floor := PriceFloorRatio * 1000
	for _, price := range samples {
		assert.GreaterOrEqual(t, price, floor)
	}
}

func TestSamplePremiumDoesNotShiftRandomStream(t *testing.T) {
	// 不启用加急时跳过加急组抽取，但市场/需求/成本三组序列与启用时一致。
	// 用零加急不确定性无法直接验证，这里退而验证：关闭加急的两次采样
	// 与开启加急的两次采样各自严格可复现。
	plainA := NewSampler(rand.New(rand.NewSource(9))).Sample(1000, 50, false, 0.2, 300)
	plainB := NewSampler(rand.New(rand.NewSource(9))).Sample(1000, 50, false, 0.2, 300)
	premiumA := NewSampler(rand.New(rand.NewSource(9))).Sample(1000, 50, true, 0.2, 300)
	premiumB := NewSampler(rand.New(rand.NewSource(9))).Sample(1000, 50, true, 0.2, 300)

	assert.Equal(t, plainA, plainB)
	assert.Equal(t, premiumA, premiumB)
	assert.NotEqual(t, plainA, premiumA)
}

func TestSampleLargerWorkforceDampensDemandNoise(t *testing.T) {
	// 需求不确定性随员工规模衰减，零波动率下只剩需求/成本噪声
	small := NewSampler(rand.New(rand.NewSource(3))).Sample(1000, 1, false, 0, 5000)
	large := NewSampler(rand.New(rand.NewSource(3))).Sample(1000, 100000, false, 0, 5000)

	smallStats := Reduce(small)
	largeStats := Reduce(large)
	assert.Less(t, largeStats.Std, smallStats.Std)
}
