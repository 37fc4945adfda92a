package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingConfirmed EventType = "BOOKING_CONFIRMED"
	EventBookingCancelled EventType = "BOOKING_CANCELLED"
	EventPointsEarned     EventType = "POINTS_EARNED"
	EventTierUpgraded     EventType = "TIER_UPGRADED"
	EventRewardRedeemed   EventType = "REWARD_REDEEMED"
)

// Event is one message on the booking topic
type Event struct {
	ID            string                 `json:"id"`
	Type          EventType              `json:"type"`
	UserID        string                 `json:"user_id"`
	BookingID     string                 `json:"booking_id,omitempty"`
	ReferenceCode string                 `json:"reference_code,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// NewEvent starts an event for a member
func NewEvent(eventType EventType, userID string) *Event {
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		UserID:    userID,
		Data:      map[string]interface{}{},
		CreatedAt: time.Now().UTC(),
	}
}

func (e *Event) WithBooking(bookingID, referenceCode string) *Event {
	e.BookingID = bookingID
	e.ReferenceCode = referenceCode
	return e
}

func (e *Event) With(key string, value interface{}) *Event {
	if e.Data == nil {
		e.Data = map[string]interface{}{}
	}
	e.Data[key] = value
	return e
}

// PartitionKey keeps every event of one member on the same partition
func (e *Event) PartitionKey() string {
	return e.UserID
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func EventFromJSON(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
