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

// policyTransitions lists the allowed forward transitions. Cancellation is
// handled separately because it is permitted from any non-terminal state.
var policyTransitions = map[models.PolicyStatus][]models.PolicyStatus{
	models.PolicyDraft:     {models.PolicyQuoted},
	models.PolicyQuoted:    {models.PolicyActive},
	models.PolicyActive:    {models.PolicyExpired, models.PolicySuspended},
	models.PolicySuspended: {},
	models.PolicyExpired:   {},
	models.PolicyCancelled: {},
}

func policyTransitionAllowed(from, to models.PolicyStatus) bool {
	for _, next := range policyTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// coverageWindow computes the policy end date as a calendar-year offset from
// the start, so a multi-year policy ends on the same date years later.
func coverageWindow(startDate int64, years int) (int64, int64) {
	start := time.Unix(startDate, 0)
	return start.Unix(), start.AddDate(years, 0, 0).Unix()
}

type PolicyService struct {
	policyRepo   *repository.PolicyRepository
	customerRepo *repository.CustomerRepository
	vehicleRepo  *repository.VehicleRepository
	quoteStore   *repository.QuoteStore
	notifier     *event.NotificationPublisher
}

func NewPolicyService(
	policyRepo *repository.PolicyRepository,
	customerRepo *repository.CustomerRepository,
	vehicleRepo *repository.VehicleRepository,
	quoteStore *repository.QuoteStore,
	notifier *event.NotificationPublisher,
) *PolicyService {
	return &PolicyService{
		policyRepo:   policyRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		quoteStore:   quoteStore,
		notifier:     notifier,
	}
}

// CreatePolicyFromQuote materializes a policy from a stored quote. The quote
// must still be inside its validity window.
func (s *PolicyService) CreatePolicyFromQuote(ctx context.Context, req *models.CreatePolicyFromQuoteRequest) (*models.Policy, error) {
	quote, err := s.quoteStore.Get(ctx, req.QuoteNumber)
	if err != nil {
		return nil, fmt.Errorf("quote not found: %w", err)
	}

	startDate, endDate := coverageWindow(quote.StartDate, quote.Years)

	quoteNumber := quote.QuoteNumber
	policy := &models.Policy{
		PolicyNumber:   utils.GenerateReferenceNumber("POL"),
		CustomerID:     quote.CustomerID,
		VehicleID:      quote.VehicleID,
		AgentID:        req.AgentID,
		PolicyType:     quote.PolicyType,
		CoverageType:   quote.CoverageType,
		StartDate:      startDate,
		EndDate:        endDate,
		PremiumAmount:  quote.TotalPremium,
		SumInsured:     quote.SumInsured,
		Deductible:     quote.Deductible,
		Status:         models.PolicyQuoted,
		SourceQuoteNum: &quoteNumber,
	}

	if err := s.policyRepo.Create(ctx, policy); err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}

	slog.Info("Policy created from quote", "policy_number", policy.PolicyNumber, "quote_number", quote.QuoteNumber)
	return policy, nil
}

// CreateDraftPolicy creates a policy in DRAFT for manual back-office entry.
func (s *PolicyService) CreateDraftPolicy(ctx context.Context, req *models.CreateDraftPolicyRequest) (*models.Policy, error) {
	if req.EndDate <= req.StartDate {
		return nil, fmt.Errorf("invalid request: end date must be after start date")
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}
	if _, err := s.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		return nil, fmt.Errorf("vehicle not found: %w", err)
	}

	policy := &models.Policy{
		PolicyNumber:  utils.GenerateReferenceNumber("POL"),
		CustomerID:    req.CustomerID,
		VehicleID:     req.VehicleID,
		AgentID:       req.AgentID,
		PolicyType:    req.PolicyType,
		CoverageType:  req.CoverageType,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PremiumAmount: req.PremiumAmount,
		SumInsured:    req.SumInsured,
		Deductible:    req.Deductible,
		Status:        models.PolicyDraft,
	}

	if err := s.policyRepo.Create(ctx, policy); err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}

	return policy, nil
}

// GetPolicy returns the policy with expiry computed on read: an ACTIVE policy
// whose coverage window has closed is persisted as EXPIRED lazily.
func (s *PolicyService) GetPolicy(ctx context.Context, policyID uuid.UUID) (*models.Policy, error) {
	policy, err := s.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("policy not found: %w", err)
	}

	if effective := policy.EffectiveStatus(time.Now().Unix()); effective != policy.Status {
		policy.Status = effective
		if err := s.policyRepo.UpdateStatus(ctx, policy); err != nil {
			slog.Error("Failed to persist lazy expiry", "policy_id", policy.ID, "error", err)
		}
	}

	return policy, nil
}

// GetPolicyByNumber looks a policy up by its business number, for back-office
// staff working from the number printed on the schedule. Same lazy expiry as
// GetPolicy.
func (s *PolicyService) GetPolicyByNumber(ctx context.Context, policyNumber string) (*models.Policy, error) {
	policy, err := s.policyRepo.GetByPolicyNumber(ctx, policyNumber)
	if err != nil {
		return nil, fmt.Errorf("policy not found: %w", err)
	}

	if effective := policy.EffectiveStatus(time.Now().Unix()); effective != policy.Status {
		policy.Status = effective
		if err := s.policyRepo.UpdateStatus(ctx, policy); err != nil {
			slog.Error("Failed to persist lazy expiry", "policy_id", policy.ID, "error", err)
		}
	}

	return policy, nil
}

// ListPolicies retrieves policies with optional filters. Expiry is computed
// on read here too, but only reported; persisting is left to the single-policy
// read to avoid a write per listed row.
func (s *PolicyService) ListPolicies(ctx context.Context, filters map[string]interface{}) ([]models.Policy, error) {
	policies, err := s.policyRepo.GetAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get policies: %w", err)
	}

	now := time.Now().Unix()
	for i := range policies {
		policies[i].Status = policies[i].EffectiveStatus(now)
	}
	return policies, nil
}

// MarkQuoted moves a DRAFT policy to QUOTED.
func (s *PolicyService) MarkQuoted(ctx context.Context, policyID uuid.UUID) (*models.Policy, error) {
	return s.transition(ctx, policyID, models.PolicyQuoted, nil)
}

// ActivatePolicy moves a QUOTED policy to ACTIVE and notifies downstream.
func (s *PolicyService) ActivatePolicy(ctx context.Context, policyID uuid.UUID) (*models.Policy, error) {
	policy, err := s.transition(ctx, policyID, models.PolicyActive, func(p *models.Policy, now int64) {
		p.ActivatedAt = &now
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.EventPolicyActivated, policy, "Policy activated",
		fmt.Sprintf("Policy %s is now active", policy.PolicyNumber))
	return policy, nil
}

// SuspendPolicy moves an ACTIVE policy to SUSPENDED. Suspension is one-way;
// the policy can only leave via cancellation.
func (s *PolicyService) SuspendPolicy(ctx context.Context, policyID uuid.UUID) (*models.Policy, error) {
	return s.transition(ctx, policyID, models.PolicySuspended, nil)
}

// CancelPolicy cancels from any non-terminal state, storing the reason and
// the cancellation date. Cancelling a terminal policy is a conflict, not a
// silent no-op.
func (s *PolicyService) CancelPolicy(ctx context.Context, policyID uuid.UUID, reason string) (*models.Policy, error) {
	policy, err := s.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("policy not found: %w", err)
	}

	if policy.Status.IsTerminal() {
		return nil, fmt.Errorf("state conflict: cannot cancel policy in status %s", policy.Status)
	}

	now := time.Now().Unix()
	policy.Status = models.PolicyCancelled
	policy.CancelReason = &reason
	policy.CancelledAt = &now

	if err := s.policyRepo.UpdateStatus(ctx, policy); err != nil {
		return nil, fmt.Errorf("failed to cancel policy: %w", err)
	}

	s.publish(ctx, event.EventPolicyCancelled, policy, "Policy cancelled",
		fmt.Sprintf("Policy %s was cancelled: %s", policy.PolicyNumber, reason))

	slog.Info("Policy cancelled", "policy_number", policy.PolicyNumber, "reason", reason)
	return policy, nil
}

// RenewPolicy creates a new policy copying type, coverage and amounts from
// the source. The source policy is left untouched.
func (s *PolicyService) RenewPolicy(ctx context.Context, policyID uuid.UUID, req *models.RenewPolicyRequest) (*models.Policy, error) {
	source, err := s.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("policy not found: %w", err)
	}

	startDate, endDate := coverageWindow(req.StartDate, req.Years)

	renewal := &models.Policy{
		PolicyNumber:  utils.GenerateReferenceNumber("POL"),
		CustomerID:    source.CustomerID,
		VehicleID:     source.VehicleID,
		AgentID:       source.AgentID,
		PolicyType:    source.PolicyType,
		CoverageType:  source.CoverageType,
		StartDate:     startDate,
		EndDate:       endDate,
		PremiumAmount: source.PremiumAmount,
		SumInsured:    source.SumInsured,
		Deductible:    source.Deductible,
		Status:        models.PolicyQuoted,
		RenewedFromID: &source.ID,
	}

	if err := s.policyRepo.Create(ctx, renewal); err != nil {
		return nil, fmt.Errorf("failed to create renewal policy: %w", err)
	}

	s.publish(ctx, event.EventPolicyRenewed, renewal, "Policy renewed",
		fmt.Sprintf("Policy %s renewed as %s", source.PolicyNumber, renewal.PolicyNumber))

	slog.Info("Policy renewed", "source", source.PolicyNumber, "renewal", renewal.PolicyNumber)
	return renewal, nil
}

// transition performs a single read-modify-write status change.
func (s *PolicyService) transition(
	ctx context.Context,
	policyID uuid.UUID,
	to models.PolicyStatus,
	stamp func(p *models.Policy, now int64),
) (*models.Policy, error) {
	policy, err := s.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		return nil, fmt.Errorf("policy not found: %w", err)
	}

	if !policyTransitionAllowed(policy.Status, to) {
		return nil, fmt.Errorf("state conflict: cannot move policy from %s to %s", policy.Status, to)
	}

	now := time.Now().Unix()
	policy.Status = to
	if stamp != nil {
		stamp(policy, now)
	}

	if err := s.policyRepo.UpdateStatus(ctx, policy); err != nil {
		return nil, fmt.Errorf("failed to update policy status: %w", err)
	}

	return policy, nil
}

func (s *PolicyService) publish(ctx context.Context, eventType event.NotificationEventType, policy *models.Policy, title, body string) {
	if s.notifier == nil {
		return
	}

	ev := event.NotificationEvent{
		EventType:  eventType,
		CustomerID: policy.CustomerID.String(),
		EntityID:   policy.ID.String(),
		Reference:  policy.PolicyNumber,
		Title:      title,
		Body:       body,
		OccurredAt: time.Now().Unix(),
	}
	if err := s.notifier.Publish(ctx, ev); err != nil {
		slog.Error("Failed to publish policy event", "event_type", eventType, "policy_id", policy.ID, "error", err)
	}
}
