package application

import (
	"context"
	"strconv"
	"time"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue"
	"github.com/wyfcoding/pkg/xerrors"
)

// OfferCommandService 处理报价相关的命令操作
// 报价单落库与事件发布通过 Outbox 在同一事务内完成
type OfferCommandService struct {
	offers     domain.OfferRepository
	companies  domain.CompanyRepository
	calculator *domain.Calculator
	publisher  messagequeue.EventPublisher
}

// NewOfferCommandService 创建 OfferCommandService 实例
func NewOfferCommandService(
	offers domain.OfferRepository,
	companies domain.CompanyRepository,
	calculator *domain.Calculator,
	publisher messagequeue.EventPublisher,
) *OfferCommandService {
	return &OfferCommandService{
		offers:     offers,
		companies:  companies,
		calculator: calculator,
		publisher:  publisher,
	}
}

// Quote 计算确定性报价，不落库
func (s *OfferCommandService) Quote(ctx context.Context, cmd QuoteCommand) (*QuoteDTO, error) {
	input, risk, err := s.buildQuoteInput(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return toQuoteDTO(s.calculator.Quote(*input), risk), nil
}

// CreateOffer 计算报价并持久化报价单，同一事务内写入 Outbox 事件
func (s *OfferCommandService) CreateOffer(ctx context.Context, cmd CreateOfferCommand) (*OfferDTO, error) {
	input, _, err := s.buildQuoteInput(ctx, QuoteCommand(cmd))
	if err != nil {
		return nil, err
	}

	quote := s.calculator.Quote(*input)
	offer := domain.NewOffer(cmd.CompanyID, *input, quote)

	err = s.offers.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.offers.Save(txCtx, offer); err != nil {
			return err
		}

		if s.publisher == nil {
			return nil
		}
		tx := contextx.GetTx(txCtx)
		event := domain.OfferCreatedEvent{
			OfferID:       offer.ID,
			CompanyID:     offer.CompanyID,
			Region:        offer.Region,
			FinalPrice:    offer.FinalPrice.InexactFloat64(),
			AIScore:       offer.AIScore,
			PriorityLevel: string(offer.PriorityLevel),
			OccurredOn:    time.Now(),
		}
		return s.publisher.PublishInTx(txCtx, tx, domain.OfferCreatedTopic, strconv.FormatUint(offer.CompanyID, 10), event)
	})
	if err != nil {
		logging.Error(ctx, "failed to create offer", "company_id", cmd.CompanyID, "error", err)
		return nil, xerrors.WrapInternal(err, "failed to create offer")
	}

	return toOfferDTO(offer), nil
}

// buildQuoteInput 组装报价输入：校验、行业风险查询与历史特征回退
func (s *OfferCommandService) buildQuoteInput(ctx context.Context, cmd QuoteCommand) (*domain.QuoteInput, float64, error) {
	if cmd.EmployeesCount <= 0 {
		return nil, 0, xerrors.InvalidArg("employees_count must be positive")
	}

	risk, err := s.companies.IndustryRisk(ctx, cmd.CompanyID)
	if err != nil {
		return nil, 0, xerrors.WrapInternal(err, "failed to resolve industry risk")
	}

	avgOrder := cmd.AvgOrderValue
	if avgOrder == 0 && cmd.CompanyID != 0 {
		if v, err := s.offers.AvgOrderValue(ctx, cmd.CompanyID); err == nil {
			avgOrder = v
		}
	}
	offersCount := cmd.OffersCount
	if offersCount == 0 && cmd.CompanyID != 0 {
		if n, err := s.offers.CountByCompany(ctx, cmd.CompanyID); err == nil {
			offersCount = int(n)
		}
	}

	return &domain.QuoteInput{
		Employees:     cmd.EmployeesCount,
		Region:        cmd.Region,
		Premium:       cmd.Premium48h,
		AvgOrderValue: avgOrder,
		OffersCount:   offersCount,
		IndustryRisk:  risk,
	}, risk, nil
}
