package services

import (
	"strings"
	"testing"

	"backoffice-service/internal/models"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// TEST SUITE 1: TRIAGE
// ============================================================================

func TestDerivePriority_InjuriesAlwaysHigh(t *testing.T) {
	priority := derivePriority(true, models.IncidentCollision, 500.0)
	assert.Equal(t, models.ClaimPriorityHigh, priority)

	// injuries outrank theft and large damage
	priority = derivePriority(true, models.IncidentTheft, 500000.0)
	assert.Equal(t, models.ClaimPriorityHigh, priority)
}

func TestDerivePriority_TheftAndFireAreMedium(t *testing.T) {
	assert.Equal(t, models.ClaimPriorityMedium, derivePriority(false, models.IncidentTheft, 0))
	assert.Equal(t, models.ClaimPriorityMedium, derivePriority(false, models.IncidentFire, 0))
}

func TestDerivePriority_LargeDamageIsMedium(t *testing.T) {
	assert.Equal(t, models.ClaimPriorityMedium, derivePriority(false, models.IncidentCollision, 100000.01))
	assert.Equal(t, models.ClaimPriorityNormal, derivePriority(false, models.IncidentCollision, 100000.0),
		"the threshold itself is not above the threshold")
}

func TestDerivePriority_RoutineClaimIsNormal(t *testing.T) {
	assert.Equal(t, models.ClaimPriorityNormal, derivePriority(false, models.IncidentWindshieldGlass, 4500.0))
}

// ============================================================================
// TEST SUITE 2: STATUS MACHINE
// ============================================================================

func TestClaimTransitions_HappyPath(t *testing.T) {
	assert.True(t, claimTransitionAllowed(models.ClaimSubmitted, models.ClaimUnderReview))
	assert.True(t, claimTransitionAllowed(models.ClaimUnderReview, models.ClaimApproved))
	assert.True(t, claimTransitionAllowed(models.ClaimApproved, models.ClaimSettled))
	assert.True(t, claimTransitionAllowed(models.ClaimSettled, models.ClaimClosed))
}

func TestClaimTransitions_InvestigationLoop(t *testing.T) {
	assert.True(t, claimTransitionAllowed(models.ClaimUnderReview, models.ClaimUnderInvestigation))
	assert.True(t, claimTransitionAllowed(models.ClaimUnderInvestigation, models.ClaimUnderReview))
	assert.True(t, claimTransitionAllowed(models.ClaimUnderInvestigation, models.ClaimPendingDocuments))
	assert.True(t, claimTransitionAllowed(models.ClaimPendingDocuments, models.ClaimUnderReview))
}

func TestClaimTransitions_SettlementOnlyFromApproved(t *testing.T) {
	assert.False(t, claimTransitionAllowed(models.ClaimSubmitted, models.ClaimSettled))
	assert.False(t, claimTransitionAllowed(models.ClaimUnderReview, models.ClaimSettled))
	assert.False(t, claimTransitionAllowed(models.ClaimRejected, models.ClaimSettled))
}

func TestClaimTransitions_NoSkippingToApproval(t *testing.T) {
	assert.False(t, claimTransitionAllowed(models.ClaimSubmitted, models.ClaimApproved))
	assert.False(t, claimTransitionAllowed(models.ClaimSubmitted, models.ClaimRejected))
}

func TestClaimTransitions_ClosedIsTerminal(t *testing.T) {
	for _, to := range []models.ClaimStatus{
		models.ClaimSubmitted, models.ClaimUnderReview, models.ClaimUnderInvestigation,
		models.ClaimPendingDocuments, models.ClaimApproved, models.ClaimRejected, models.ClaimSettled,
	} {
		assert.False(t, claimTransitionAllowed(models.ClaimClosed, to), "closed claim must not move to %s", to)
	}
}

func TestClaimTransitions_RejectedOnlyCloses(t *testing.T) {
	assert.True(t, claimTransitionAllowed(models.ClaimRejected, models.ClaimClosed))
	assert.False(t, claimTransitionAllowed(models.ClaimRejected, models.ClaimUnderReview))
	assert.False(t, claimTransitionAllowed(models.ClaimRejected, models.ClaimApproved))
}

// ============================================================================
// TEST SUITE 3: SUBMISSION AND SETTLEMENT GUARDS
// ============================================================================

func TestIncidentWithinCoverage(t *testing.T) {
	policy := &models.Policy{StartDate: 1_700_000_000, EndDate: 1_731_536_000}

	assert.True(t, incidentWithinCoverage(policy, 1_715_000_000))
	assert.True(t, incidentWithinCoverage(policy, policy.StartDate), "start date is inside the window")
	assert.True(t, incidentWithinCoverage(policy, policy.EndDate), "end date is inside the window")
	assert.False(t, incidentWithinCoverage(policy, policy.StartDate-1))
	assert.False(t, incidentWithinCoverage(policy, policy.EndDate+1))
}

func TestSettlementAllowed_ApprovedWithAmount(t *testing.T) {
	amount := 45000.0
	claim := &models.Claim{Status: models.ClaimApproved, ApprovedAmount: &amount}

	assert.NoError(t, settlementAllowed(claim))
}

func TestSettlementAllowed_RejectsNonApprovedStatus(t *testing.T) {
	amount := 45000.0
	for _, status := range []models.ClaimStatus{
		models.ClaimSubmitted, models.ClaimUnderReview, models.ClaimRejected, models.ClaimSettled,
	} {
		claim := &models.Claim{Status: status, ApprovedAmount: &amount}
		err := settlementAllowed(claim)
		assert.ErrorContains(t, err, "state conflict", "status %s must not settle", status)
	}
}

func TestSettlementAllowed_RequiresPositiveApprovedAmount(t *testing.T) {
	claim := &models.Claim{Status: models.ClaimApproved}
	assert.ErrorContains(t, settlementAllowed(claim), "approved amount")

	zero := 0.0
	claim.ApprovedAmount = &zero
	assert.ErrorContains(t, settlementAllowed(claim), "approved amount")
}

// ============================================================================
// TEST SUITE 4: NOTES
// ============================================================================

func TestAppendNote_AddsTimestampedLine(t *testing.T) {
	claim := &models.Claim{}

	appendNote(claim, "called the garage for an estimate")
	appendNote(claim, "estimate received")

	lines := strings.Split(strings.TrimRight(claim.Notes, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "called the garage for an estimate")
	assert.Contains(t, lines[1], "estimate received")
	assert.True(t, strings.HasPrefix(lines[0], "["), "each line starts with a timestamp")
}

func TestAppendNote_EmptyNoteIsIgnored(t *testing.T) {
	claim := &models.Claim{Notes: "existing\n"}

	appendNote(claim, "")

	assert.Equal(t, "existing\n", claim.Notes)
}
