package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProximityNotification is one entry in the stacking notification feed.
// Entries expire after a fixed display window but can also be dismissed.
type ProximityNotification struct {
	ID        uuid.UUID `json:"id"`
	AlertID   uuid.UUID `json:"alert_id"`
	Icon      string    `json:"icon"`
	TypeName  string    `json:"type_name"`
	Zona      string    `json:"zona"`
	Severity  string    `json:"severity"`
	Color     string    `json:"color"`
	Distance  string    `json:"distance"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type WebhookPayload struct {
	NotificationID uuid.UUID `json:"notification_id"`
	AlertID        uuid.UUID `json:"alert_id"`
	Type           string    `json:"type"`
	Zona           string    `json:"zona"`
	Severity       int       `json:"severity"`
	Distance       string    `json:"distance"`
	SentAt         time.Time `json:"sent_at"`
}
