package services

import (
	"testing"
	"time"

	"backoffice-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPaymentTransitions_CollectionPath(t *testing.T) {
	assert.True(t, paymentTransitionAllowed(models.PaymentPending, models.PaymentProcessing))
	assert.True(t, paymentTransitionAllowed(models.PaymentProcessing, models.PaymentCompleted))
	assert.True(t, paymentTransitionAllowed(models.PaymentProcessing, models.PaymentFailed))
}

func TestPaymentTransitions_FailedCanBeResubmitted(t *testing.T) {
	assert.True(t, paymentTransitionAllowed(models.PaymentFailed, models.PaymentProcessing))
	assert.False(t, paymentTransitionAllowed(models.PaymentFailed, models.PaymentCompleted),
		"a failed payment must go back through processing")
}

func TestPaymentTransitions_RefundOnlyFromCompleted(t *testing.T) {
	assert.True(t, paymentTransitionAllowed(models.PaymentCompleted, models.PaymentRefunded))
	assert.False(t, paymentTransitionAllowed(models.PaymentPending, models.PaymentRefunded))
	assert.False(t, paymentTransitionAllowed(models.PaymentProcessing, models.PaymentRefunded))
}

func TestPaymentTransitions_CancelOnlyFromPending(t *testing.T) {
	assert.True(t, paymentTransitionAllowed(models.PaymentPending, models.PaymentCancelled))
	assert.False(t, paymentTransitionAllowed(models.PaymentProcessing, models.PaymentCancelled))
	assert.False(t, paymentTransitionAllowed(models.PaymentCompleted, models.PaymentCancelled))
}

func TestPaymentTransitions_TerminalStates(t *testing.T) {
	assert.Empty(t, paymentTransitions[models.PaymentCancelled])
	assert.Empty(t, paymentTransitions[models.PaymentRefunded])
}

func TestPaymentIsOverdue(t *testing.T) {
	now := time.Now().Unix()
	past := now - 24*60*60
	future := now + 24*60*60

	pending := &models.Payment{Status: models.PaymentPending, DueDate: &past}
	assert.True(t, pending.IsOverdue(now))

	failed := &models.Payment{Status: models.PaymentFailed, DueDate: &past}
	assert.True(t, failed.IsOverdue(now))

	notDueYet := &models.Payment{Status: models.PaymentPending, DueDate: &future}
	assert.False(t, notDueYet.IsOverdue(now))

	completed := &models.Payment{Status: models.PaymentCompleted, DueDate: &past}
	assert.False(t, completed.IsOverdue(now), "a collected payment is never overdue")

	noDueDate := &models.Payment{Status: models.PaymentPending}
	assert.False(t, noDueDate.IsOverdue(now))
}
