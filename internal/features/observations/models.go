package observations

import (
	"time"

	"github.com/google/uuid"
)

// Observation is a single field measurement session record. Ownership is
// fixed at creation and rows are never hard-deleted.
type Observation struct {
	ID           uuid.UUID `json:"id"           gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	WorkspaceID  string    `json:"workspaceId"  gorm:"column:workspace_id;index"`
	CreatedBy    uuid.UUID `json:"createdBy"    gorm:"column:created_by"`
	Observer     string    `json:"observer"`
	StationName  string    `json:"stationName"  gorm:"column:station_name"`
	ObsDate      time.Time `json:"obsDate"      gorm:"column:obs_date"`
	StartTime    time.Time `json:"startTime"    gorm:"column:start_time"`
	EndTime      time.Time `json:"endTime"      gorm:"column:end_time"`
	ReceiverNo   string    `json:"receiverNo"   gorm:"column:receiver_no"`
	ReceiverName string    `json:"receiverName" gorm:"column:receiver_name"`
	HeightMode   string    `json:"heightMode"   gorm:"column:height_mode"`
	Memo         string    `json:"memo"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Observation) TableName() string {
	return "observations"
}
