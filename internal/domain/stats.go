package domain

type AlertStats struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Critical int `json:"critical"` // approved with severity >= 4
	Verified int `json:"verified"` // approved and verified
}
