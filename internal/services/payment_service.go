package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"backoffice-service/internal/event"
	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/utils"

	"github.com/google/uuid"
)

// paymentTransitions lists the allowed payment status transitions. FAILED
// back to PROCESSING is the explicit re-submission path; there is no
// automatic retry. REFUNDED is reached through RefundPayment only.
var paymentTransitions = map[models.PaymentStatus][]models.PaymentStatus{
	models.PaymentPending:    {models.PaymentProcessing, models.PaymentCancelled},
	models.PaymentProcessing: {models.PaymentCompleted, models.PaymentFailed},
	models.PaymentFailed:     {models.PaymentProcessing},
	models.PaymentCompleted:  {models.PaymentRefunded},
	models.PaymentCancelled:  {},
	models.PaymentRefunded:   {},
}

func paymentTransitionAllowed(from, to models.PaymentStatus) bool {
	for _, next := range paymentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	policyRepo  *repository.PolicyRepository
	notifier    *event.NotificationPublisher
}

func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	policyRepo *repository.PolicyRepository,
	notifier *event.NotificationPublisher,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		policyRepo:  policyRepo,
		notifier:    notifier,
	}
}

// CreatePremiumPayment opens a PENDING premium payment on a policy.
func (s *PaymentService) CreatePremiumPayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid request: amount must be positive")
	}

	policy, err := s.policyRepo.GetByID(ctx, req.PolicyID)
	if err != nil {
		return nil, fmt.Errorf("policy not found: %w", err)
	}

	payment := &models.Payment{
		PaymentReference: utils.GenerateReferenceNumber("PAY"),
		PolicyID:         policy.ID,
		Amount:           utils.RoundSatang(req.Amount),
		PaymentType:      models.PaymentTypePremium,
		Method:           req.Method,
		Status:           models.PaymentPending,
		DueDate:          req.DueDate,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	slog.Info("Premium payment created", "payment_reference", payment.PaymentReference, "policy_number", policy.PolicyNumber)
	return payment, nil
}

// GetPayment retrieves a payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment not found: %w", err)
	}
	return payment, nil
}

// GetPaymentsByPolicyID retrieves all payments on a policy.
func (s *PaymentService) GetPaymentsByPolicyID(ctx context.Context, policyID uuid.UUID) ([]models.Payment, error) {
	payments, err := s.paymentRepo.GetByPolicyID(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	return payments, nil
}

// ListOverduePayments returns payments past their due date that are still
// collectible. Overdue is computed at read time, never stored.
func (s *PaymentService) ListOverduePayments(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.paymentRepo.GetOverdue(ctx, time.Now().Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to get overdue payments: %w", err)
	}
	return payments, nil
}

// ProcessPayment moves a PENDING payment (or a FAILED one being re-submitted
// by the caller) to PROCESSING.
func (s *PaymentService) ProcessPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	return s.transition(ctx, paymentID, models.PaymentProcessing, func(p *models.Payment, now int64) {
		p.ProcessedAt = &now
	})
}

// CompletePayment moves a PROCESSING payment to COMPLETED.
func (s *PaymentService) CompletePayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	payment, err := s.transition(ctx, paymentID, models.PaymentCompleted, func(p *models.Payment, now int64) {
		p.CompletedAt = &now
		p.FailureReason = nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.EventPaymentCompleted, payment, "Payment completed",
		fmt.Sprintf("Payment %s for %.2f THB completed", payment.PaymentReference, payment.Amount))
	return payment, nil
}

// FailPayment moves a PROCESSING payment to FAILED with a reason.
func (s *PaymentService) FailPayment(ctx context.Context, paymentID uuid.UUID, reason string) (*models.Payment, error) {
	return s.transition(ctx, paymentID, models.PaymentFailed, func(p *models.Payment, now int64) {
		p.FailedAt = &now
		p.FailureReason = &reason
	})
}

// CancelPayment cancels a PENDING payment.
func (s *PaymentService) CancelPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	return s.transition(ctx, paymentID, models.PaymentCancelled, nil)
}

// RefundPayment refunds a COMPLETED payment by creating a new linked REFUND
// payment and marking the original REFUNDED, in one transaction.
func (s *PaymentService) RefundPayment(ctx context.Context, paymentID uuid.UUID, amount float64) (*models.Payment, error) {
	original, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment not found: %w", err)
	}

	if original.Status != models.PaymentCompleted {
		return nil, fmt.Errorf("state conflict: only a COMPLETED payment can be refunded, got %s", original.Status)
	}
	if amount <= 0 || amount > original.Amount {
		return nil, fmt.Errorf("invalid request: refund amount must be positive and not exceed the original amount")
	}

	refund := &models.Payment{
		PaymentReference:  utils.GenerateReferenceNumber("PAY"),
		PolicyID:          original.PolicyID,
		ClaimID:           original.ClaimID,
		OriginalPaymentID: &original.ID,
		Amount:            utils.RoundSatang(amount),
		PaymentType:       models.PaymentTypeRefund,
		Method:            original.Method,
		Status:            models.PaymentPending,
	}

	original.Status = models.PaymentRefunded

	tx, err := s.paymentRepo.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.paymentRepo.UpdateStatusTx(tx, original); err != nil {
		return nil, fmt.Errorf("failed to mark payment refunded: %w", err)
	}
	if err := s.paymentRepo.CreateTx(tx, refund); err != nil {
		return nil, fmt.Errorf("failed to create refund payment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit refund: %w", err)
	}

	s.publish(ctx, event.EventPaymentRefunded, refund, "Payment refunded",
		fmt.Sprintf("Payment %s refunded as %s for %.2f THB", original.PaymentReference, refund.PaymentReference, refund.Amount))

	slog.Info("Payment refunded",
		"original_reference", original.PaymentReference,
		"refund_reference", refund.PaymentReference,
		"amount", refund.Amount,
	)
	return refund, nil
}

// transition performs a single read-modify-write payment status change.
func (s *PaymentService) transition(
	ctx context.Context,
	paymentID uuid.UUID,
	to models.PaymentStatus,
	stamp func(p *models.Payment, now int64),
) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment not found: %w", err)
	}

	if !paymentTransitionAllowed(payment.Status, to) {
		return nil, fmt.Errorf("state conflict: cannot move payment from %s to %s", payment.Status, to)
	}

	now := time.Now().Unix()
	payment.Status = to
	if stamp != nil {
		stamp(payment, now)
	}

	if err := s.paymentRepo.UpdateStatus(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	return payment, nil
}

func (s *PaymentService) publish(ctx context.Context, eventType event.NotificationEventType, payment *models.Payment, title, body string) {
	if s.notifier == nil {
		return
	}

	policy, err := s.policyRepo.GetByID(ctx, payment.PolicyID)
	if err != nil {
		slog.Error("Failed to load policy for payment event", "payment_id", payment.ID, "error", err)
		return
	}

	ev := event.NotificationEvent{
		EventType:  eventType,
		CustomerID: policy.CustomerID.String(),
		EntityID:   payment.ID.String(),
		Reference:  payment.PaymentReference,
		Title:      title,
		Body:       body,
		OccurredAt: time.Now().Unix(),
	}
	if err := s.notifier.Publish(ctx, ev); err != nil {
		slog.Error("Failed to publish payment event", "event_type", eventType, "payment_id", payment.ID, "error", err)
	}
}
