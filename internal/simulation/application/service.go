package application

import (
	"context"
	"errors"
	"time"

	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/xerrors"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/simulation/domain"
)

// SimulationService 模拟上下文的应用服务。
// 每个请求先取确定性报价做锚点，再以报价终价和 AI 评分驱动引擎；
// 完成事件尽力投递，发布失败不影响响应。
type SimulationService struct {
	quoter    domain.PriceQuoter
	risk      domain.IndustryRiskReader
	publisher domain.EventPublisher
}

// NewSimulationService 创建 SimulationService 实例
func NewSimulationService(quoter domain.PriceQuoter, risk domain.IndustryRiskReader, publisher domain.EventPublisher) *SimulationService {
	return &SimulationService{quoter: quoter, risk: risk, publisher: publisher}
}

// RunSimulation 执行价格风险模拟
func (s *SimulationService) RunSimulation(ctx context.Context, cmd SimulateCommand) (*SimulateDTO, error) {
	quote, input, err := s.prepare(ctx, cmd)
	if err != nil {
		return nil, err
	}

	result, err := s.newEngine(cmd).SimulatePrice(*input)
	if err != nil {
		return nil, mapEngineErr(err)
	}

	s.publishCompleted(ctx, cmd, input, result)

	return &SimulateDTO{
		DistributionDTO:    *toDistributionDTO(result),
		DeterministicPrice: quote.FinalPrice,
		AIScore:            quote.AIScore,
		PriorityLevel:      quote.Priority,
	}, nil
}

// ScenarioAnalysis 生成乐观/预期/悲观情景
func (s *SimulationService) ScenarioAnalysis(ctx context.Context, cmd SimulateCommand) (*ScenarioAnalysisDTO, error) {
	_, input, err := s.prepare(ctx, cmd)
	if err != nil {
		return nil, err
	}

	_, set, err := s.newEngine(cmd).ScenarioAnalysis(*input)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	return toScenarioAnalysisDTO(set), nil
}

// SensitivityAnalysis 关键输入的单因子敏感性分析
func (s *SimulationService) SensitivityAnalysis(ctx context.Context, cmd SimulateCommand) (*SensitivityDTO, error) {
	quote, input, err := s.prepare(ctx, cmd)
	if err != nil {
		return nil, err
	}

	sensitivity, err := s.newEngine(cmd).SensitivityAnalysis(*input)
	if err != nil {
		return nil, mapEngineErr(err)
	}
	return &SensitivityDTO{
		DeterministicPrice: quote.FinalPrice,
		AIScore:            quote.AIScore,
		Baseline:           toDistributionDTO(sensitivity.Baseline),
		Sensitivities:      sensitivity.Scenarios,
	}, nil
}

// prepare 校验命令、取确定性报价与行业风险，组装引擎输入
func (s *SimulationService) prepare(ctx context.Context, cmd SimulateCommand) (*domain.PriceQuote, *domain.SimulationInput, error) {
	if cmd.EmployeesCount <= 0 {
		return nil, nil, xerrors.InvalidArg("employees_count must be positive")
	}
	if cmd.Simulations == 0 {
		cmd.Simulations = DefaultSimulations
	}
	if cmd.Simulations < 0 {
		return nil, nil, xerrors.InvalidArg("n_simulations must be positive")
	}

	quote, err := s.quoter.Quote(ctx, domain.QuoteRequest{
		CompanyID:     cmd.CompanyID,
		Employees:     cmd.EmployeesCount,
		Region:        cmd.Region,
		Premium:       cmd.Premium48h,
		AvgOrderValue: cmd.AvgOrderValue,
		OffersCount:   cmd.OffersCount,
	})
	if err != nil {
		return nil, nil, err
	}

	industryRisk, err := s.risk.IndustryRisk(ctx, cmd.CompanyID)
	if err != nil {
		logging.Warn(ctx, "industry risk lookup failed, using default", "company_id", cmd.CompanyID, "error", err)
		industryRisk = 0.5
	}

	return quote, &domain.SimulationInput{
		BasePrice:    quote.FinalPrice,
		Employees:    cmd.EmployeesCount,
		Region:       cmd.Region,
		IndustryRisk: industryRisk,
		AIScore:      quote.AIScore,
		Premium:      cmd.Premium48h,
		N:            cmd.Simulations,
	}, nil
}

// newEngine 每个请求独立的引擎，固定种子用于可复现实验
func (s *SimulationService) newEngine(cmd SimulateCommand) *domain.Engine {
	if cmd.Seed != nil {
		return domain.NewEngine(*cmd.Seed)
	}
	return domain.NewEngineFromEntropy()
}

// publishCompleted 尽力发布完成事件
func (s *SimulationService) publishCompleted(ctx context.Context, cmd SimulateCommand, input *domain.SimulationInput, result *domain.SimulationResult) {
	if s.publisher == nil {
		return
	}
	event := &domain.SimulationCompletedEvent{
		CompanyID:          cmd.CompanyID,
		Region:             cmd.Region,
		BasePrice:          input.BasePrice,
		MeanPrice:          result.Mean,
		StdDev:             result.Std,
		P5:                 result.P5,
		P95:                result.P95,
		Simulations:        result.N,
		RiskInterpretation: result.RiskInterpretation,
		CompletedAt:        time.Now(),
	}
	if err := s.publisher.PublishSimulationCompleted(ctx, event); err != nil {
		logging.Warn(ctx, "failed to publish simulation completed event", "company_id", cmd.CompanyID, "error", err)
	}
}

func mapEngineErr(err error) error {
	if errors.Is(err, domain.ErrInvalidBasePrice) || errors.Is(err, domain.ErrInvalidSampleCount) {
		return xerrors.InvalidArg(err.Error())
	}
	return xerrors.WrapInternal(err, "simulation failed")
}
