package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/runera/runera-backend/internal/domain"
)

// RunStatusHistory represents the run_status_history table - append-only audit trail of run transitions
type RunStatusHistory struct {
	// ID is the internal database primary key; it orders the trail
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RunID references the run
	RunID string `gorm:"column:run_id;not null;type:uuid;index:idx_run_status_history_run"`
	// Status is the status the run entered
	Status domain.RunStatus `gorm:"column:status;not null;type:text"`
	// ReasonCode is set on a REJECTED row
	ReasonCode *domain.ReasonCode `gorm:"column:reason_code;type:text"`
	// Meta carries transition context such as the validator version
	Meta datatypes.JSON `gorm:"column:meta"`
	// CreatedAt is the timestamp when the transition happened
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the RunStatusHistory model
func (RunStatusHistory) TableName() string {
	return "run_status_history"
}

// RunTransitionMeta is the JSON stored in RunStatusHistory.Meta
type RunTransitionMeta struct {
	ValidatorVersion string `json:"validator_version,omitempty"`
	AvgPaceSeconds   int64  `json:"avg_pace_seconds,omitempty"`
}
