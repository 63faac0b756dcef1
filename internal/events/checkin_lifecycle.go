package events

import "time"

const CheckinLifecycleTopic = "fieldtrack.checkin.lifecycle.v1"

const (
	CheckinCreated    = "checkin_created"
	CheckinCheckedOut = "checkin_checked_out"
)

// CheckinEvent is published for both lifecycle transitions of a check-in session.
// CheckoutTime is only set on checkin_checked_out.
type CheckinEvent struct {
	EventType     string     `json:"event_type"`
	RequestID     string     `json:"request_id,omitempty"`
	CheckinID     string     `json:"checkin_id"`
	EmployeeID    string     `json:"employee_id"`
	ClientID      string     `json:"client_id"`
	DistanceKm    float64    `json:"distance_km"`
	FarFromClient bool       `json:"far_from_client"`
	CheckinTime   time.Time  `json:"checkin_time"`
	CheckoutTime  *time.Time `json:"checkout_time,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}
