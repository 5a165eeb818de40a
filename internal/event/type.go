package event

// NotificationQueue is consumed by the downstream email/SMS workers.
const NotificationQueue = "backoffice_notification_events"

type NotificationEventType string

const (
	EventPolicyActivated  NotificationEventType = "policy.activated"
	EventPolicyCancelled  NotificationEventType = "policy.cancelled"
	EventPolicyRenewed    NotificationEventType = "policy.renewed"
	EventClaimSubmitted   NotificationEventType = "claim.submitted"
	EventClaimApproved    NotificationEventType = "claim.approved"
	EventClaimRejected    NotificationEventType = "claim.rejected"
	EventClaimSettled     NotificationEventType = "claim.settled"
	EventPaymentCompleted NotificationEventType = "payment.completed"
	EventPaymentRefunded  NotificationEventType = "payment.refunded"
)

// NotificationEvent is the wire shape published to the notification queue.
type NotificationEvent struct {
	EventType  NotificationEventType `json:"event_type"`
	CustomerID string                `json:"customer_id"`
	EntityID   string                `json:"entity_id"`
	Reference  string                `json:"reference"`
	Title      string                `json:"title"`
	Body       string                `json:"body"`
	OccurredAt int64                 `json:"occurred_at"`
}
