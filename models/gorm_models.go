package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// GORM-compatible models with proper tags

// JSONBlob stores a raw JSON document in a jsonb column without forcing it
// through the Configuration struct, so fields from other schema versions
// survive a save/load round trip.
type JSONBlob []byte

// Value implements driver.Valuer.
func (j JSONBlob) Value() (driver.Value, error) {
	if len(j) == 0 {
		return []byte("{}"), nil
	}
	return []byte(j), nil
}

// Scan implements sql.Scanner.
func (j *JSONBlob) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		*j = append((*j)[:0], v...)
		return nil
	case string:
		*j = JSONBlob(v)
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// MarshalJSON emits the blob as-is instead of base64.
func (j JSONBlob) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return []byte(j), nil
}

// UnmarshalJSON stores the raw document.
func (j *JSONBlob) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("invalid json for scenario data")
	}
	*j = append((*j)[:0], data...)
	return nil
}

// ScenarioGorm represents the scenario table with GORM tags. ID keeps the
// insertion order used for positional deletes; UID is the stable identifier
// exposed to clients.
type ScenarioGorm struct {
	ID   int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UID  string    `gorm:"column:uid;uniqueIndex;not null" json:"uid"`
	Name string    `gorm:"column:name;not null" json:"name"`
	Date time.Time `gorm:"column:date;not null" json:"date"`
	Data JSONBlob  `gorm:"column:data;type:jsonb;not null" json:"data"`
}

// TableName specifies the table name for ScenarioGorm
func (ScenarioGorm) TableName() string {
	return "scenario"
}
