package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertStatus string

const (
	AlertPending  AlertStatus = "pending"
	AlertApproved AlertStatus = "approved"
	AlertRejected AlertStatus = "rejected"
)

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertPending, AlertApproved, AlertRejected:
		return true
	}
	return false
}

type Alert struct {
	ID          uuid.UUID   `json:"id"`
	Type        string      `json:"type"`
	Severity    int         `json:"severity"` // 1..5
	Zona        string      `json:"zona"`
	Description string      `json:"description"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	Timestamp   time.Time   `json:"timestamp"`
	Verified    bool        `json:"verified"`
	Reports     int         `json:"reports"`
	Status      AlertStatus `json:"status"`
	ReportedBy  string      `json:"reported_by"`
}

// ReportDraft is a validated user submission; the store turns it into a
// pending Alert.
type ReportDraft struct {
	Type        string  `json:"type" validate:"required,crimetype"`
	Severity    int     `json:"severity" validate:"required,severity"`
	Zona        string  `json:"zona" validate:"required,zona"`
	Description string  `json:"description" validate:"required"`
	Lat         float64 `json:"lat" validate:"required,lat"`
	Lng         float64 `json:"lng" validate:"required,lng"`
	ReportedBy  string  `json:"reported_by"`
}
