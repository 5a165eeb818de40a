package repository

import (
	"testing"

	"backoffice-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildPolicyFilterClause_TypedFiltersProducePredicates(t *testing.T) {
	customerID := uuid.New()

	clause, args := buildPolicyFilterClause(map[string]interface{}{
		"customer_id": customerID,
		"status":      models.PolicyActive,
		"policy_type": models.PolicyTypeVoluntary,
	})

	assert.Equal(t, " AND customer_id = $1 AND status = $2 AND policy_type = $3", clause)
	assert.Equal(t, []interface{}{customerID, models.PolicyActive, models.PolicyTypeVoluntary}, args)
}

func TestBuildPolicyFilterClause_StatusOnly(t *testing.T) {
	clause, args := buildPolicyFilterClause(map[string]interface{}{
		"status": models.PolicyExpired,
	})

	assert.Equal(t, " AND status = $1", clause)
	assert.Equal(t, []interface{}{models.PolicyExpired}, args)
}

func TestBuildPolicyFilterClause_EmptyFilters(t *testing.T) {
	clause, args := buildPolicyFilterClause(map[string]interface{}{})

	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestBuildClaimFilterClause_TypedFiltersProducePredicates(t *testing.T) {
	policyID := uuid.New()

	clause, args := buildClaimFilterClause(map[string]interface{}{
		"policy_id": policyID,
		"status":    models.ClaimUnderReview,
		"priority":  models.ClaimPriorityHigh,
	})

	assert.Equal(t, " AND policy_id = $1 AND status = $2 AND priority = $3", clause)
	assert.Equal(t, []interface{}{policyID, models.ClaimUnderReview, models.ClaimPriorityHigh}, args)
}

func TestBuildClaimFilterClause_AdjusterFilter(t *testing.T) {
	adjusterID := uuid.New()

	clause, args := buildClaimFilterClause(map[string]interface{}{
		"adjuster_id": adjusterID,
	})

	assert.Equal(t, " AND adjuster_id = $1", clause)
	assert.Equal(t, []interface{}{adjusterID}, args)
}
