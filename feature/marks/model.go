package marks

import "time"

// MarkedRecord is one persisted mark. Position keeps the set in insertion order.
type MarkedRecord struct {
	RecordID  string    `gorm:"column:record_id;primaryKey;size:191" json:"record_id"`
	Position  int       `gorm:"column:position;not null;index" json:"position"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the gorm table name.
func (MarkedRecord) TableName() string {
	return "marked_records"
}

// markedColumns are the columns the store relies on.
var markedColumns = []string{"record_id", "position", "created_at"}
