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

// Triage thresholds. These are business configuration, not hidden logic:
// any injury outranks everything, theft and fire (and large estimated
// damage) outrank routine collisions.
const damageMediumPriorityThreshold = 100000.0

// claimTransitions lists the allowed transitions of the claim status machine.
var claimTransitions = map[models.ClaimStatus][]models.ClaimStatus{
	models.ClaimSubmitted:          {models.ClaimUnderReview, models.ClaimUnderInvestigation},
	models.ClaimUnderReview:        {models.ClaimUnderInvestigation, models.ClaimPendingDocuments, models.ClaimApproved, models.ClaimRejected},
	models.ClaimUnderInvestigation: {models.ClaimUnderReview, models.ClaimPendingDocuments, models.ClaimApproved, models.ClaimRejected},
	models.ClaimPendingDocuments:   {models.ClaimUnderReview, models.ClaimUnderInvestigation},
	models.ClaimApproved:           {models.ClaimSettled},
	models.ClaimRejected:           {models.ClaimClosed},
	models.ClaimSettled:            {models.ClaimClosed},
	models.ClaimClosed:             {},
}

func claimTransitionAllowed(from, to models.ClaimStatus) bool {
	for _, next := range claimTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// incidentWithinCoverage reports whether the incident date falls inside the
// policy coverage window, boundaries included.
func incidentWithinCoverage(policy *models.Policy, incidentDate int64) bool {
	return incidentDate >= policy.StartDate && incidentDate <= policy.EndDate
}

// settlementAllowed checks the settlement preconditions: an APPROVED claim
// with a positive approved amount.
func settlementAllowed(claim *models.Claim) error {
	if claim.Status != models.ClaimApproved {
		return fmt.Errorf("state conflict: claim can only be settled from APPROVED, got %s", claim.Status)
	}
	if claim.ApprovedAmount == nil || *claim.ApprovedAmount <= 0 {
		return fmt.Errorf("state conflict: claim has no positive approved amount")
	}
	return nil
}

// derivePriority triages a claim at submission time.
func derivePriority(hasInjuries bool, incidentType models.IncidentType, estimatedDamage float64) models.ClaimPriority {
	if hasInjuries {
		return models.ClaimPriorityHigh
	}
	if incidentType == models.IncidentTheft || incidentType == models.IncidentFire {
		return models.ClaimPriorityMedium
	}
	if estimatedDamage > damageMediumPriorityThreshold {
		return models.ClaimPriorityMedium
	}
	return models.ClaimPriorityNormal
}

// appendNote appends a timestamped line to the claim's append-only notes.
func appendNote(claim *models.Claim, note string) {
	if note == "" {
		return
	}
	line := fmt.Sprintf("[%s] %s\n", time.Now().Format(time.RFC3339), note)
	claim.Notes += line
}

type ClaimService struct {
	claimRepo   *repository.ClaimRepository
	policyRepo  *repository.PolicyRepository
	paymentRepo *repository.PaymentRepository
	userRepo    *repository.UserRepository
	notifier    *event.NotificationPublisher
}

func NewClaimService(
	claimRepo *repository.ClaimRepository,
	policyRepo *repository.PolicyRepository,
	paymentRepo *repository.PaymentRepository,
	userRepo *repository.UserRepository,
	notifier *event.NotificationPublisher,
) *ClaimService {
	return &ClaimService{
		claimRepo:   claimRepo,
		policyRepo:  policyRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// SubmitClaim validates the incident against the policy coverage window and
// creates the claim in SUBMITTED with a derived priority.
func (s *ClaimService) SubmitClaim(ctx context.Context, req *models.SubmitClaimRequest) (*models.Claim, error) {
	policy, err := s.policyRepo.GetByID(ctx, req.PolicyID)
	if err != nil {
		return nil, fmt.Errorf("policy not found: %w", err)
	}

	// expiry is computed on read here too, so a stale ACTIVE row cannot
	// accept claims past its coverage window
	if status := policy.EffectiveStatus(time.Now().Unix()); status != models.PolicyActive {
		return nil, fmt.Errorf("state conflict: claims can only be submitted on an active policy, got %s", status)
	}

	if !incidentWithinCoverage(policy, req.IncidentDate) {
		return nil, fmt.Errorf("invalid request: incident date falls outside the policy coverage window")
	}

	claim := &models.Claim{
		ClaimNumber:         utils.GenerateReferenceNumber("CLM"),
		PolicyID:            policy.ID,
		IncidentDate:        req.IncidentDate,
		IncidentLocation:    req.IncidentLocation,
		IncidentDescription: req.IncidentDescription,
		IncidentType:        req.IncidentType,
		HasInjuries:         req.HasInjuries,
		EstimatedDamage:     req.EstimatedDamage,
		Priority:            derivePriority(req.HasInjuries, req.IncidentType, req.EstimatedDamage),
		Status:              models.ClaimSubmitted,
		SubmittedAt:         time.Now().Unix(),
	}

	if err := s.claimRepo.Create(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	s.publish(ctx, event.EventClaimSubmitted, policy, claim, "Claim submitted",
		fmt.Sprintf("Claim %s was submitted on policy %s", claim.ClaimNumber, policy.PolicyNumber))

	slog.Info("Claim submitted",
		"claim_number", claim.ClaimNumber,
		"policy_number", policy.PolicyNumber,
		"priority", claim.Priority,
	)
	return claim, nil
}

// GetClaim retrieves a claim by ID.
func (s *ClaimService) GetClaim(ctx context.Context, claimID uuid.UUID) (*models.Claim, error) {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("claim not found: %w", err)
	}
	return claim, nil
}

// ListClaims retrieves claims with optional filters.
func (s *ClaimService) ListClaims(ctx context.Context, filters map[string]interface{}) ([]models.Claim, error) {
	claims, err := s.claimRepo.GetAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}
	return claims, nil
}

// GetClaimsByPolicyID retrieves claims belonging to a policy.
func (s *ClaimService) GetClaimsByPolicyID(ctx context.Context, policyID uuid.UUID) ([]models.Claim, error) {
	claims, err := s.claimRepo.GetByPolicyID(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}
	return claims, nil
}

// AssignAdjuster assigns a user holding the ADJUSTER role to the claim.
func (s *ClaimService) AssignAdjuster(ctx context.Context, claimID, adjusterID uuid.UUID) (*models.Claim, error) {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("claim not found: %w", err)
	}

	adjuster, err := s.userRepo.GetByID(ctx, adjusterID)
	if err != nil {
		return nil, fmt.Errorf("adjuster not found: %w", err)
	}
	if adjuster.Role != models.RoleAdjuster {
		return nil, fmt.Errorf("invalid request: user %s does not hold the adjuster role", adjuster.Username)
	}

	claim.AdjusterID = &adjuster.ID
	appendNote(claim, fmt.Sprintf("assigned to adjuster %s", adjuster.Username))

	if err := s.claimRepo.Update(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to assign adjuster: %w", err)
	}

	return claim, nil
}

// StartReview moves the claim to UNDER_REVIEW.
func (s *ClaimService) StartReview(ctx context.Context, claimID uuid.UUID, note *string) (*models.Claim, error) {
	return s.transition(ctx, claimID, models.ClaimUnderReview, note, func(c *models.Claim, now int64) {
		c.ReviewStartedAt = &now
	})
}

// StartInvestigation moves the claim to UNDER_INVESTIGATION.
func (s *ClaimService) StartInvestigation(ctx context.Context, claimID uuid.UUID, note *string) (*models.Claim, error) {
	return s.transition(ctx, claimID, models.ClaimUnderInvestigation, note, func(c *models.Claim, now int64) {
		c.InvestigationAt = &now
	})
}

// RequestDocuments moves the claim to PENDING_DOCUMENTS.
func (s *ClaimService) RequestDocuments(ctx context.Context, claimID uuid.UUID, note *string) (*models.Claim, error) {
	return s.transition(ctx, claimID, models.ClaimPendingDocuments, note, func(c *models.Claim, now int64) {
		c.DocumentsRequested = &now
	})
}

// ApproveClaim approves the claim with a positive approved amount.
func (s *ClaimService) ApproveClaim(ctx context.Context, claimID uuid.UUID, req *models.ApproveClaimRequest, approverID *uuid.UUID) (*models.Claim, error) {
	if req.ApprovedAmount <= 0 {
		return nil, fmt.Errorf("invalid request: approved amount must be positive")
	}

	claim, err := s.transition(ctx, claimID, models.ClaimApproved, req.Note, func(c *models.Claim, now int64) {
		c.ApprovedAt = &now
		c.ApprovedAmount = &req.ApprovedAmount
		c.ApprovedBy = approverID
	})
	if err != nil {
		return nil, err
	}

	s.publishForClaim(ctx, event.EventClaimApproved, claim, "Claim approved",
		fmt.Sprintf("Claim %s approved for %.2f THB", claim.ClaimNumber, req.ApprovedAmount))
	return claim, nil
}

// RejectClaim rejects the claim with a reason.
func (s *ClaimService) RejectClaim(ctx context.Context, claimID uuid.UUID, req *models.RejectClaimRequest) (*models.Claim, error) {
	claim, err := s.transition(ctx, claimID, models.ClaimRejected, req.Note, func(c *models.Claim, now int64) {
		c.RejectedAt = &now
		c.RejectReason = &req.Reason
	})
	if err != nil {
		return nil, err
	}

	s.publishForClaim(ctx, event.EventClaimRejected, claim, "Claim rejected",
		fmt.Sprintf("Claim %s was rejected: %s", claim.ClaimNumber, req.Reason))
	return claim, nil
}

// SettleClaim settles an APPROVED claim. The paid amount equals the
// settlement amount, and a linked settlement payment is created in the same
// transaction. Partial settlements are not supported.
func (s *ClaimService) SettleClaim(ctx context.Context, claimID uuid.UUID, req *models.SettleClaimRequest) (*models.Claim, error) {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("claim not found: %w", err)
	}

	if err := settlementAllowed(claim); err != nil {
		return nil, err
	}
	if req.SettlementAmount <= 0 {
		return nil, fmt.Errorf("invalid request: settlement amount must be positive")
	}

	now := time.Now().Unix()
	claim.Status = models.ClaimSettled
	claim.SettledAt = &now
	claim.SettledAmount = &req.SettlementAmount
	claim.PaidAmount = &req.SettlementAmount
	if req.Note != nil {
		appendNote(claim, *req.Note)
	}

	settlement := &models.Payment{
		PaymentReference: utils.GenerateReferenceNumber("PAY"),
		PolicyID:         claim.PolicyID,
		ClaimID:          &claim.ID,
		Amount:           req.SettlementAmount,
		PaymentType:      models.PaymentTypeClaimSettlement,
		Method:           req.Method,
		Status:           models.PaymentPending,
	}

	tx, err := s.claimRepo.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.claimRepo.UpdateTx(tx, claim); err != nil {
		return nil, fmt.Errorf("failed to settle claim: %w", err)
	}
	if err := s.paymentRepo.CreateTx(tx, settlement); err != nil {
		return nil, fmt.Errorf("failed to create settlement payment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit settlement: %w", err)
	}

	s.publishForClaim(ctx, event.EventClaimSettled, claim, "Claim settled",
		fmt.Sprintf("Claim %s settled for %.2f THB, payment %s", claim.ClaimNumber, req.SettlementAmount, settlement.PaymentReference))

	slog.Info("Claim settled",
		"claim_number", claim.ClaimNumber,
		"settled_amount", req.SettlementAmount,
		"payment_reference", settlement.PaymentReference,
	)
	return claim, nil
}

// CloseClaim closes a SETTLED or REJECTED claim.
func (s *ClaimService) CloseClaim(ctx context.Context, claimID uuid.UUID, note *string) (*models.Claim, error) {
	return s.transition(ctx, claimID, models.ClaimClosed, note, func(c *models.Claim, now int64) {
		c.ClosedAt = &now
	})
}

// transition performs a single read-modify-write claim status change,
// stamping the matching date field and appending the optional note.
func (s *ClaimService) transition(
	ctx context.Context,
	claimID uuid.UUID,
	to models.ClaimStatus,
	note *string,
	stamp func(c *models.Claim, now int64),
) (*models.Claim, error) {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("claim not found: %w", err)
	}

	if !claimTransitionAllowed(claim.Status, to) {
		return nil, fmt.Errorf("state conflict: cannot move claim from %s to %s", claim.Status, to)
	}

	now := time.Now().Unix()
	claim.Status = to
	if stamp != nil {
		stamp(claim, now)
	}
	if note != nil {
		appendNote(claim, *note)
	}

	if err := s.claimRepo.Update(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to update claim: %w", err)
	}

	return claim, nil
}

func (s *ClaimService) publishForClaim(ctx context.Context, eventType event.NotificationEventType, claim *models.Claim, title, body string) {
	policy, err := s.policyRepo.GetByID(ctx, claim.PolicyID)
	if err != nil {
		slog.Error("Failed to load policy for claim event", "claim_id", claim.ID, "error", err)
		return
	}
	s.publish(ctx, eventType, policy, claim, title, body)
}

func (s *ClaimService) publish(ctx context.Context, eventType event.NotificationEventType, policy *models.Policy, claim *models.Claim, title, body string) {
	if s.notifier == nil {
		return
	}

	ev := event.NotificationEvent{
		EventType:  eventType,
		CustomerID: policy.CustomerID.String(),
		EntityID:   claim.ID.String(),
		Reference:  claim.ClaimNumber,
		Title:      title,
		Body:       body,
		OccurredAt: time.Now().Unix(),
	}
	if err := s.notifier.Publish(ctx, ev); err != nil {
		slog.Error("Failed to publish claim event", "event_type", eventType, "claim_id", claim.ID, "error", err)
	}
}
