package services

import (
	"testing"
	"time"

	"backoffice-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPolicyTransitions_LifecyclePath(t *testing.T) {
	assert.True(t, policyTransitionAllowed(models.PolicyDraft, models.PolicyQuoted))
	assert.True(t, policyTransitionAllowed(models.PolicyQuoted, models.PolicyActive))
	assert.True(t, policyTransitionAllowed(models.PolicyActive, models.PolicyExpired))
	assert.True(t, policyTransitionAllowed(models.PolicyActive, models.PolicySuspended))
}

func TestPolicyTransitions_NoSkippingStages(t *testing.T) {
	assert.False(t, policyTransitionAllowed(models.PolicyDraft, models.PolicyActive))
	assert.False(t, policyTransitionAllowed(models.PolicyQuoted, models.PolicyExpired))
}

func TestPolicyTransitions_NoReverseMovement(t *testing.T) {
	assert.False(t, policyTransitionAllowed(models.PolicyActive, models.PolicyQuoted))
	assert.False(t, policyTransitionAllowed(models.PolicyQuoted, models.PolicyDraft))
	assert.False(t, policyTransitionAllowed(models.PolicySuspended, models.PolicyActive),
		"suspension is one-way, a suspended policy is re-issued rather than reactivated")
}

func TestPolicyTransitions_TerminalStates(t *testing.T) {
	for _, from := range []models.PolicyStatus{models.PolicyExpired, models.PolicyCancelled} {
		for _, to := range []models.PolicyStatus{
			models.PolicyDraft, models.PolicyQuoted, models.PolicyActive,
			models.PolicyExpired, models.PolicySuspended, models.PolicyCancelled,
		} {
			assert.False(t, policyTransitionAllowed(from, to), "%s must not move to %s", from, to)
		}
	}
}

func TestCoverageWindow_OneYear(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local).Unix()

	gotStart, gotEnd := coverageWindow(start, 1)

	assert.Equal(t, start, gotStart, "start date passes through unchanged")
	assert.Equal(t, time.Date(2027, 3, 10, 12, 0, 0, 0, time.Local).Unix(), gotEnd,
		"a one-year policy ends on the same calendar date a year later")
}

func TestCoverageWindow_MultiYear(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local).Unix()

	_, gotEnd := coverageWindow(start, 3)

	assert.Equal(t, time.Date(2029, 7, 1, 0, 0, 0, 0, time.Local).Unix(), gotEnd)
}

func TestCoverageWindow_LeapDayNormalizes(t *testing.T) {
	start := time.Date(2024, 2, 29, 12, 0, 0, 0, time.Local).Unix()

	_, gotEnd := coverageWindow(start, 1)

	// Feb 29 2025 does not exist, so the window ends on Mar 1
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local).Unix(), gotEnd)
}

func TestPolicyEffectiveStatus_ActivePastEndDateReadsExpired(t *testing.T) {
	now := time.Now().Unix()
	policy := &models.Policy{Status: models.PolicyActive, EndDate: now - 1}

	assert.Equal(t, models.PolicyExpired, policy.EffectiveStatus(now))
}

func TestPolicyEffectiveStatus_ActiveInsideWindowStaysActive(t *testing.T) {
	now := time.Now().Unix()
	policy := &models.Policy{Status: models.PolicyActive, EndDate: now + 3600}

	assert.Equal(t, models.PolicyActive, policy.EffectiveStatus(now))
	assert.Equal(t, models.PolicyActive, policy.EffectiveStatus(policy.EndDate),
		"the end date itself is still covered")
}

func TestPolicyEffectiveStatus_OnlyActivePoliciesExpire(t *testing.T) {
	now := time.Now().Unix()
	for _, status := range []models.PolicyStatus{
		models.PolicyDraft, models.PolicyQuoted, models.PolicySuspended, models.PolicyCancelled,
	} {
		policy := &models.Policy{Status: status, EndDate: now - 1}
		assert.Equal(t, status, policy.EffectiveStatus(now), "%s must not read as expired", status)
	}
}

func TestPolicyStatusIsTerminal(t *testing.T) {
	assert.True(t, models.PolicyExpired.IsTerminal())
	assert.True(t, models.PolicyCancelled.IsTerminal())
	assert.False(t, models.PolicyDraft.IsTerminal())
	assert.False(t, models.PolicyQuoted.IsTerminal())
	assert.False(t, models.PolicyActive.IsTerminal())
	assert.False(t, models.PolicySuspended.IsTerminal())
}
