package services

import (
	"testing"

	"backoffice-service/internal/models"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// TEST SUITE 1: PREMIUM CALCULATION
// ============================================================================

func TestCalculatePremium_CMIWithNoClaimDiscount(t *testing.T) {
	service := &QuoteService{}

	// CMI tariff 645.21, one year, three claim-free years => 30% discount
	breakdown := service.calculatePremium(models.PolicyTypeCMI, models.CoverageThirdPartyOnly, 0, 1, 3)

	assert.InDelta(t, 645.21, breakdown.BasePremium, 0.001)
	assert.InDelta(t, 0.0, breakdown.MultiYearDiscount, 0.001)
	assert.InDelta(t, 193.56, breakdown.NoClaimDiscount, 0.001, "30% of 645.21")
	assert.InDelta(t, 451.65, breakdown.NetPremium, 0.001)
	assert.InDelta(t, 31.62, breakdown.VATAmount, 0.001)
	assert.InDelta(t, 484.26, breakdown.TotalPremium, 0.001, "net + VAT + 1.00 stamp duty")
}

func TestCalculatePremium_ComprehensiveUsesSumInsured(t *testing.T) {
	service := &QuoteService{}

	breakdown := service.calculatePremium(models.PolicyTypeVoluntary, models.CoverageComprehensive, 800000, 1, 0)

	assert.InDelta(t, 16000.00, breakdown.BasePremium, 0.001, "2% of 800000")
	assert.InDelta(t, 0.0, breakdown.NoClaimDiscount, 0.001)
	assert.InDelta(t, 16000.00, breakdown.NetPremium, 0.001)
	assert.InDelta(t, 1120.00, breakdown.VATAmount, 0.001)
	assert.InDelta(t, 17121.00, breakdown.TotalPremium, 0.001)
}

func TestCalculatePremium_MultiYearDiscount(t *testing.T) {
	service := &QuoteService{}

	// 3-year comprehensive on 500000 => 5% off the 10000 base
	breakdown := service.calculatePremium(models.PolicyTypeVoluntary, models.CoverageComprehensive, 500000, 3, 0)

	assert.InDelta(t, 500.00, breakdown.MultiYearDiscount, 0.001)
	assert.InDelta(t, 9500.00, breakdown.BasePremium, 0.001, "base is reported after the multi-year discount")
	assert.InDelta(t, 9500.00, breakdown.NetPremium, 0.001)
	assert.InDelta(t, 665.00, breakdown.VATAmount, 0.001)
	assert.InDelta(t, 10166.00, breakdown.TotalPremium, 0.001)
}

func TestCalculatePremium_SingleYearHasNoMultiYearDiscount(t *testing.T) {
	service := &QuoteService{}

	breakdown := service.calculatePremium(models.PolicyTypeVoluntary, models.CoverageThirdPartyOnly, 400000, 1, 0)

	assert.InDelta(t, 0.0, breakdown.MultiYearDiscount, 0.001)
	assert.InDelta(t, 3200.00, breakdown.BasePremium, 0.001, "0.8% of 400000")
}

func TestCalculatePremium_NoClaimDiscountCappedAtFiveYears(t *testing.T) {
	service := &QuoteService{}

	// 7 claim-free years still earns the 50% cap
	breakdown := service.calculatePremium(models.PolicyTypeVoluntary, models.CoverageThirdPartyFireTheft, 600000, 1, 7)

	assert.InDelta(t, 7200.00, breakdown.BasePremium, 0.001, "1.2% of 600000")
	assert.InDelta(t, 3600.00, breakdown.NoClaimDiscount, 0.001)
	assert.InDelta(t, 3600.00, breakdown.NetPremium, 0.001)
	assert.InDelta(t, 252.00, breakdown.VATAmount, 0.001)
	assert.InDelta(t, 3853.00, breakdown.TotalPremium, 0.001)
}

// ============================================================================
// TEST SUITE 2: RATE HELPERS
// ============================================================================

func TestCoverageRate_UnknownCoverageFallsBackToThirdParty(t *testing.T) {
	assert.Equal(t, thirdPartyRate, coverageRate(models.CoverageType("UNKNOWN_TIER")))
}

func TestCoverageRate_KnownTiers(t *testing.T) {
	assert.Equal(t, comprehensiveRate, coverageRate(models.CoverageComprehensive))
	assert.Equal(t, fireTheftRate, coverageRate(models.CoverageThirdPartyFireTheft))
	assert.Equal(t, thirdPartyRate, coverageRate(models.CoverageThirdPartyOnly))
}

func TestNoClaimDiscountRate_Table(t *testing.T) {
	assert.Equal(t, 0.0, noClaimDiscountRate(0))
	assert.Equal(t, 0.10, noClaimDiscountRate(1))
	assert.Equal(t, 0.30, noClaimDiscountRate(3))
	assert.Equal(t, 0.50, noClaimDiscountRate(5))
	assert.Equal(t, 0.50, noClaimDiscountRate(12), "capped above five years")
	assert.Equal(t, 0.0, noClaimDiscountRate(-1), "negative years earn nothing")
}
