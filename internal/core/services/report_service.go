package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chamaflow/internal/adapters/persistence/repositories"
	"chamaflow/internal/core/domain"
	"chamaflow/internal/pkg/money"
)

// ReportService aggregates group financials for officials.
type ReportService struct {
	reportRepo repositories.ReportRepository
	personRepo repositories.PersonRepository
}

func NewReportService(reportRepo repositories.ReportRepository, personRepo repositories.PersonRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		personRepo: personRepo,
	}
}

// GroupSummary is the treasurer's overview of the whole group.
type GroupSummary struct {
	Members            int64  `json:"members"`
	TotalContributions string `json:"total_contributions"`
	TotalLoansApproved string `json:"total_loans_approved"`
	TotalRentCollected string `json:"total_rent_collected"`
}

// Summary returns totals across the whole group.
func (s *ReportService) Summary(ctx context.Context) (*GroupSummary, error) {
	members, err := s.reportRepo.CountPersons(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	contributions, err := s.reportRepo.SumContributions(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	loans, err := s.reportRepo.SumApprovedLoans(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	rent, err := s.reportRepo.SumRentPayments(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}

	return &GroupSummary{
		Members:            members,
		TotalContributions: money.Format(contributions),
		TotalLoansApproved: money.Format(loans),
		TotalRentCollected: money.Format(rent),
	}, nil
}

// MemberStatement is one member's financial position.
type MemberStatement struct {
	PersonID           uint   `json:"person_id"`
	FullName           string `json:"full_name"`
	TotalContributions string `json:"total_contributions"`
	TotalLoans         string `json:"total_loans"`
	TotalRepayments    string `json:"total_repayments"`
	OutstandingBalance string `json:"outstanding_balance"`
}

// MemberReport returns one member's contribution and loan position.
func (s *ReportService) MemberReport(ctx context.Context, personID uint) (*MemberStatement, error) {
	person, err := s.personRepo.GetByID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPersonNotFound
		}
		return nil, domain.ErrInternalServer
	}

	contributions, err := s.reportRepo.SumContributionsByPerson(ctx, personID)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	loans, err := s.reportRepo.SumLoansByPerson(ctx, personID)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	repayments, err := s.reportRepo.SumRepaymentsByPerson(ctx, personID)
	if err != nil {
		return nil, domain.ErrInternalServer
	}

	return &MemberStatement{
		PersonID:           person.ID,
		FullName:           person.FullName,
		TotalContributions: money.Format(contributions),
		TotalLoans:         money.Format(loans),
		TotalRepayments:    money.Format(repayments),
		OutstandingBalance: money.Format(loans - repayments),
	}, nil
}

// IncomeReport breaks group income down by source.
type IncomeReport struct {
	Contributions string `json:"contributions"`
	LoanInterest  string `json:"loan_interest"`
	RentCollected string `json:"rent_collected"`
	TotalIncome   string `json:"total_income"`
}

// Income returns income earned from contributions, loan interest and rent.
func (s *ReportService) Income(ctx context.Context) (*IncomeReport, error) {
	contributions, err := s.reportRepo.SumContributions(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	interest, err := s.reportRepo.SumLoanInterest(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}
	rent, err := s.reportRepo.SumRentPayments(ctx)
	if err != nil {
		return nil, domain.ErrInternalServer
	}

	return &IncomeReport{
		Contributions: money.Format(contributions),
		LoanInterest:  money.Format(interest),
		RentCollected: money.Format(rent),
		TotalIncome:   money.Format(contributions + interest + rent),
	}, nil
}
