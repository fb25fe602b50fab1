package application

import (
	"context"

	"github.com/LukaszZinczuk/System-Wycen-AI-ML/internal/pricing/domain"
	"github.com/wyfcoding/pkg/xerrors"
)

// CompanyService 公司与行业管理
type CompanyService struct {
	companies domain.CompanyRepository
}

// NewCompanyService 创建 CompanyService 实例
func NewCompanyService(companies domain.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

// CreateCompany 创建公司
func (s *CompanyService) CreateCompany(ctx context.Context, cmd CreateCompanyCommand) (*CompanyDTO, error) {
	if cmd.Name == "" {
		return nil, xerrors.InvalidArg("company name is required")
	}
	company := &domain.Company{
		Name:       cmd.Name,
		IndustryID: cmd.IndustryID,
		Region:     cmd.Region,
	}
	if err := s.companies.Save(ctx, company); err != nil {
		return nil, xerrors.WrapInternal(err, "failed to create company")
	}
	return toCompanyDTO(company), nil
}

// GetCompany 按 ID 查询公司
func (s *CompanyService) GetCompany(ctx context.Context, id uint64) (*CompanyDTO, error) {
	company, err := s.companies.Get(ctx, id)
	if err != nil {
		return nil, xerrors.WrapInternal(err, "failed to load company")
	}
	if company == nil {
		return nil, xerrors.NotFound("company not found")
	}
	return toCompanyDTO(company), nil
}

// ListCompanies 公司列表
func (s *CompanyService) ListCompanies(ctx context.Context, limit int) ([]*CompanyDTO, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	companies, err := s.companies.List(ctx, limit)
	if err != nil {
		return nil, xerrors.WrapInternal(err, "failed to list companies")
	}
	dtos := make([]*CompanyDTO, 0, len(companies))
	for _, company := range companies {
		dtos = append(dtos, toCompanyDTO(company))
	}
	return dtos, nil
}

// SeedIndustries 写入默认行业字典，幂等
func (s *CompanyService) SeedIndustries(ctx context.Context) error {
	return s.companies.SeedIndustries(ctx, domain.DefaultIndustries)
}
