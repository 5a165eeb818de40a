package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/utils"
)

// Premium rates. CMI is the government-fixed compulsory tariff; voluntary
// rates are per coverage tier on the sum insured.
const (
	cmiBasePremium    = 645.21
	comprehensiveRate = 0.02
	fireTheftRate     = 0.012
	thirdPartyRate    = 0.008

	multiYearDiscountRate = 0.05
	vatRate               = 0.07
	stampDuty             = 1.00

	quoteValidityDays = 30
)

// noClaimDiscountTable is indexed by consecutive claim-free years and capped
// at the last tier.
var noClaimDiscountTable = []float64{0, 0.10, 0.20, 0.30, 0.40, 0.50}

type QuoteService struct {
	customerRepo *repository.CustomerRepository
	vehicleRepo  *repository.VehicleRepository
	quoteStore   *repository.QuoteStore
}

func NewQuoteService(
	customerRepo *repository.CustomerRepository,
	vehicleRepo *repository.VehicleRepository,
	quoteStore *repository.QuoteStore,
) *QuoteService {
	return &QuoteService{
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		quoteStore:   quoteStore,
	}
}

type premiumBreakdown struct {
	BasePremium       float64
	MultiYearDiscount float64
	NoClaimDiscount   float64
	NetPremium        float64
	VATAmount         float64
	TotalPremium      float64
}

// coverageRate resolves the voluntary rate for a coverage tier. An
// unrecognized coverage type falls back to the third-party-only rate.
func coverageRate(coverage models.CoverageType) float64 {
	switch coverage {
	case models.CoverageComprehensive:
		return comprehensiveRate
	case models.CoverageThirdPartyFireTheft:
		return fireTheftRate
	case models.CoverageThirdPartyOnly:
		return thirdPartyRate
	default:
		return thirdPartyRate
	}
}

func noClaimDiscountRate(noClaimYears int) float64 {
	if noClaimYears < 0 {
		return 0
	}
	if noClaimYears >= len(noClaimDiscountTable) {
		return noClaimDiscountTable[len(noClaimDiscountTable)-1]
	}
	return noClaimDiscountTable[noClaimYears]
}

// calculatePremium computes the full breakdown. Components are rounded for
// display; the total is rounded once from the unrounded chain.
func (s *QuoteService) calculatePremium(
	policyType models.PolicyType,
	coverage models.CoverageType,
	sumInsured float64,
	years int,
	noClaimYears int,
) premiumBreakdown {
	var base float64
	if policyType == models.PolicyTypeCMI {
		base = cmiBasePremium
	} else {
		base = sumInsured * coverageRate(coverage)
	}

	var multiYear float64
	if years > 1 {
		multiYear = base * multiYearDiscountRate
		base -= multiYear
	}

	noClaim := base * noClaimDiscountRate(noClaimYears)
	net := base - noClaim
	vat := net * vatRate
	total := net + vat + stampDuty

	return premiumBreakdown{
		BasePremium:       utils.RoundSatang(base),
		MultiYearDiscount: utils.RoundSatang(multiYear),
		NoClaimDiscount:   utils.RoundSatang(noClaim),
		NetPremium:        utils.RoundSatang(net),
		VATAmount:         utils.RoundSatang(vat),
		TotalPremium:      utils.RoundSatang(total),
	}
}

// IssueQuote computes a premium quote and stores it for its validity window.
// The quote itself has no side effects on policies.
func (s *QuoteService) IssueQuote(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error) {
	customer, err := s.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("vehicle not found: %w", err)
	}

	if vehicle.CustomerID != customer.ID {
		return nil, fmt.Errorf("invalid request: vehicle does not belong to this customer")
	}

	if req.Years < 1 {
		return nil, fmt.Errorf("invalid request: years must be at least 1")
	}

	sumInsured := vehicle.MarketValue
	if req.SumInsured != nil {
		sumInsured = *req.SumInsured
	}

	deductible := 0.0
	if req.Deductible != nil {
		deductible = *req.Deductible
	}

	noClaimYears := customer.NoClaimYears
	if req.NoClaimYears != nil {
		noClaimYears = *req.NoClaimYears
	}

	breakdown := s.calculatePremium(req.PolicyType, req.CoverageType, sumInsured, req.Years, noClaimYears)

	now := time.Now()
	quote := &models.Quote{
		QuoteNumber:       utils.GenerateReferenceNumber("QTE"),
		CustomerID:        customer.ID,
		VehicleID:         vehicle.ID,
		PolicyType:        req.PolicyType,
		CoverageType:      req.CoverageType,
		StartDate:         req.StartDate,
		Years:             req.Years,
		SumInsured:        sumInsured,
		Deductible:        deductible,
		BasePremium:       breakdown.BasePremium,
		MultiYearDiscount: breakdown.MultiYearDiscount,
		NoClaimDiscount:   breakdown.NoClaimDiscount,
		NetPremium:        breakdown.NetPremium,
		VATAmount:         breakdown.VATAmount,
		StampDuty:         stampDuty,
		TotalPremium:      breakdown.TotalPremium,
		IssuedAt:          now.Unix(),
		ValidUntil:        now.AddDate(0, 0, quoteValidityDays).Unix(),
	}

	if err := s.quoteStore.Save(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to store quote: %w", err)
	}

	slog.Info("Quote issued",
		"quote_number", quote.QuoteNumber,
		"policy_type", quote.PolicyType,
		"total_premium", quote.TotalPremium,
	)

	return quote, nil
}

// GetQuote fetches a previously issued quote. Quotes past their validity
// window are gone.
func (s *QuoteService) GetQuote(ctx context.Context, quoteNumber string) (*models.Quote, error) {
	quote, err := s.quoteStore.Get(ctx, quoteNumber)
	if err != nil {
		return nil, fmt.Errorf("quote not found: %w", err)
	}
	return quote, nil
}
