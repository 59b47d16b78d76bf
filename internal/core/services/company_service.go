package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/revlo/revlo_ledger/internal/apperrors"
	"github.com/revlo/revlo_ledger/internal/core/domain"
	portsrepo "github.com/revlo/revlo_ledger/internal/core/ports/repositories"
	portssvc "github.com/revlo/revlo_ledger/internal/core/ports/services"
	"github.com/revlo/revlo_ledger/internal/dto"
	"github.com/revlo/revlo_ledger/internal/utils"
)

// companyService implements the CompanySvcFacade interface
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a company service. It is its own authorizer.
func NewCompanyService(repo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	svc := &companyService{companyRepo: repo}
	svc.CompanyAuthorizer = svc
	return svc
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	if creatorUserID == "" {
		return nil, apperrors.NewLedgerError(apperrors.KindUnauthorized, "create company", nil)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("company name is required")
	}
	var currencyCode *string
	if req.DefaultCurrencyCode != nil {
		code := strings.ToUpper(*req.DefaultCurrencyCode)
		if !utils.IsValidCurrencyCode(code) {
			return nil, apperrors.NewValidationError("unknown currency code %q", *req.DefaultCurrencyCode)
		}
		currencyCode = &code
	}

	now := s.now()
	company := domain.Company{
		CompanyID:           uuid.NewString(),
		Name:                name,
		Description:         req.Description,
		DefaultCurrencyCode: currencyCode,
		IsActive:            true,
		AuditFields:         domain.NewAuditFields(creatorUserID, now),
	}
	admin := domain.UserCompany{
		UserID:    creatorUserID,
		CompanyID: company.CompanyID,
		Role:      domain.RoleAdmin,
		JoinedAt:  now,
	}

	if err := s.companyRepo.SaveCompany(ctx, company, admin); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("company_id", company.CompanyID))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.LogInfo(ctx, "Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

func (s *companyService) GetCompanyByID(ctx context.Context, companyID string, userID string) (*domain.Company, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, wrapLookupError("company", companyID, err)
	}
	return company, nil
}

func (s *companyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompaniesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies for user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list companies for user %s: %w", userID, err)
	}
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}

func (s *companyService) AddUserToCompany(ctx context.Context, addingUserID, companyID string, req dto.AddUserToCompanyRequest) error {
	if err := s.AuthorizeUser(ctx, addingUserID, companyID, domain.RoleAdmin); err != nil {
		return err
	}
	if req.UserID == "" {
		return apperrors.NewValidationError("user id is required")
	}
	if !req.Role.IsValid() {
		return apperrors.NewValidationError("unknown role %q", req.Role)
	}
	if req.UserID == addingUserID && req.Role != domain.RoleAdmin {
		return apperrors.NewValidationError("admins cannot demote themselves")
	}

	membership := domain.UserCompany{
		UserID:    req.UserID,
		CompanyID: companyID,
		Role:      req.Role,
		JoinedAt:  s.now(),
	}
	if err := s.companyRepo.AddUserToCompany(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add user to company", slog.String("target_user_id", req.UserID), slog.String("company_id", companyID))
		return fmt.Errorf("failed to add user %s to company %s: %w", req.UserID, companyID, err)
	}

	s.LogInfo(ctx, "User added to company",
		slog.String("target_user_id", req.UserID),
		slog.String("company_id", companyID),
		slog.String("role", string(req.Role)))
	return nil
}

// AuthorizeUserAction checks if a user has the required role (or higher) within a specific company.
// Non-members get NotFound so the company's existence is not revealed.
func (s *companyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	membership, err := s.companyRepo.FindUserCompanyRole(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("Authorization failed: user is not a member of the company",
				slog.String("user_id", userID), slog.String("company_id", companyID))
			return apperrors.NewNotFoundError("company", companyID)
		}
		s.LogError(ctx, err, "Failed to check user company role", slog.String("user_id", userID), slog.String("company_id", companyID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	if !membership.Role.Satisfies(requiredRole) {
		s.GetLogger(ctx).Warn("Authorization failed: insufficient role",
			slog.String("user_id", userID),
			slog.String("company_id", companyID),
			slog.String("role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return fmt.Errorf("%w: role %s required", apperrors.ErrForbidden, requiredRole)
	}
	return nil
}
