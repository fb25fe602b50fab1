package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/pkg/xerrors"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/domain"
)

type fakeQuoter struct {
	quote   *domain.PriceQuote
	err     error
	lastReq domain.QuoteRequest
}

func (f *fakeQuoter) Quote(_ context.Context, req domain.QuoteRequest) (*domain.PriceQuote, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.quote, nil
}

type fakeRiskReader struct {
	risk float64
	err  error
}

func (f *fakeRiskReader) IndustryRisk(context.Context, uint64) (float64, error) {
	return f.risk, f.err
}

type fakePublisher struct {
	events []*domain.SimulationCompletedEvent
	err    error
}

func (f *fakePublisher) PublishSimulationCompleted(_ context.Context, event *domain.SimulationCompletedEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func newTestService() (*SimulationService, *fakeQuoter, *fakePublisher) {
	quoter := &fakeQuoter{quote: &domain.PriceQuote{
		BasePrice:  5000,
		FinalPrice: 5400,
		AIScore:    62.5,
		Priority:   "STANDARD",
	}}
	pub := &fakePublisher{}
	svc := NewSimulationService(quoter, &fakeRiskReader{risk: 0.3}, pub)
	return svc, quoter, pub
}

func testCommand() SimulateCommand {
	seed := int64(42)
	return SimulateCommand{
		CompanyID:      7,
		EmployeesCount: 50,
		Region:         "Mazowieckie",
		Simulations:    2000,
		Seed:           &seed,
	}
}

func assertErrType(t *testing.T, err error, typ xerrors.ErrorType) {
	t.Helper()
	xe, ok := xerrors.FromError(err)
	require.True(t, ok, "expected *xerrors.Error, got %v", err)
	assert.Equal(t, typ, xe.Type)
}

func TestRunSimulationValidation(t *testing.T) {
	svc, _, _ := newTestService()

	cmd := testCommand()
	cmd.EmployeesCount = 0
	_, err := svc.RunSimulation(context.Background(), cmd)
	require.Error(t, err)
	assertErrType(t, err, xerrors.ErrInvalidArg)

	cmd = testCommand()
	cmd.Simulations = -1
	_, err = svc.RunSimulation(context.Background(), cmd)
	require.Error(t, err)
	assertErrType(t, err, xerrors.ErrInvalidArg)
}

func TestRunSimulationAnchorsOnQuote(t *testing.T) {
	svc, quoter, pub := newTestService()

	result, err := svc.RunSimulation(context.Background(), testCommand())
	require.NoError(t, err)

	// 报价回显
	assert.Equal(t, 5400.0, result.DeterministicPrice)
	assert.Equal(t, 62.5, result.AIScore)
	assert.Equal(t, "STANDARD", result.PriorityLevel)

	// 报价请求携带完整公司画像
	assert.Equal(t, uint64(7), quoter.lastReq.CompanyID)
	assert.Equal(t, 50, quoter.lastReq.Employees)
	assert.Equal(t, "Mazowieckie", quoter.lastReq.Region)

	// 分布摘要围绕报价终价
	assert.Equal(t, 2000, result.SimulationQuality.Simulations)
	assert.Greater(t, result.MeanPrice, 5400*0.7)
	assert.Less(t, result.MeanPrice, 5400*1.5)
	assert.Len(t, result.Histogram.Counts, domain.HistogramBins)
	assert.Len(t, result.Histogram.Bins, domain.HistogramBins+1)

	// 完成事件已投递
	require.Len(t, pub.events, 1)
	assert.Equal(t, uint64(7), pub.events[0].CompanyID)
	assert.Equal(t, 5400.0, pub.events[0].BasePrice)
}

func TestRunSimulationDefaultsSimulationCount(t *testing.T) {
	svc, _, _ := newTestService()

	cmd := testCommand()
	cmd.Simulations = 0
	result, err := svc.RunSimulation(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, DefaultSimulations, result.SimulationQuality.Simulations)
}

func TestRunSimulationSingleSampleSerializes(t *testing.T) {
	svc, _, _ := newTestService()

	cmd := testCommand()
	cmd.Simulations = 1
	result, err := svc.RunSimulation(context.Background(), cmd)
	require.NoError(t, err)

	// 单样本没有收敛证据，但响应必须可序列化
	assert.Equal(t, 0.0, result.SimulationQuality.ConvergenceScore)
	_, err = json.Marshal(result)
	require.NoError(t, err)
}

func TestRunSimulationReproducibleWithSeed(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.RunSimulation(context.Background(), testCommand())
	require.NoError(t, err)
	second, err := svc.RunSimulation(context.Background(), testCommand())
	require.NoError(t, err)

	assert.Equal(t, first.MeanPrice, second.MeanPrice)
	assert.Equal(t, first.Histogram, second.Histogram)
}

func TestRunSimulationQuoterFailurePropagates(t *testing.T) {
	quoter := &fakeQuoter{err: xerrors.NotFound("company not found")}
	svc := NewSimulationService(quoter, &fakeRiskReader{risk: 0.3}, nil)

	_, err := svc.RunSimulation(context.Background(), testCommand())
	require.Error(t, err)
	assertErrType(t, err, xerrors.ErrNotFound)
}

func TestRunSimulationRiskLookupFallsBack(t *testing.T) {
	quoter := &fakeQuoter{quote: &domain.PriceQuote{FinalPrice: 5000, AIScore: 60, Priority: "STANDARD"}}
	risk := &fakeRiskReader{err: errors.New("db unavailable")}
	svc := NewSimulationService(quoter, risk, nil)

	// 风险查询失败回退默认因子，不中断请求
	result, err := svc.RunSimulation(context.Background(), testCommand())
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestRunSimulationPublisherFailureIsBestEffort(t *testing.T) {
	svc, _, pub := newTestService()
	pub.err = errors.New("broker down")

	result, err := svc.RunSimulation(context.Background(), testCommand())
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, pub.events, 1)
}

func TestScenarioAnalysisShape(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.ScenarioAnalysis(context.Background(), testCommand())
	require.NoError(t, err)

	assert.Equal(t, "5%", result.BestCase.Probability)
	assert.Equal(t, "Most likely", result.ExpectedCase.Probability)
	assert.Equal(t, "5%", result.WorstCase.Probability)
	assert.Greater(t, result.BestCase.Price, result.WorstCase.Price)
	assert.Equal(t, result.WorstCase.Price, result.PriceRange.Min)
	assert.Equal(t, result.BestCase.Price, result.PriceRange.Max)
	assert.Positive(t, result.PriceRange.SpreadPct)
}

func TestSensitivityAnalysisShape(t *testing.T) {
	svc, _, _ := newTestService()

	result, err := svc.SensitivityAnalysis(context.Background(), testCommand())
	require.NoError(t, err)

	assert.Equal(t, 5400.0, result.DeterministicPrice)
	require.NotNil(t, result.Baseline)
	require.Len(t, result.Sensitivities, 4)
	for _, key := range []string{"employees_-20%", "employees_+20%", "volatility_10%", "volatility_30%"} {
		_, ok := result.Sensitivities[key]
		assert.True(t, ok, "missing sensitivity %q", key)
	}
}
