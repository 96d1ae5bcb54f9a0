package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Timestamps is embedded inline in every row that tracks its lifecycle.
// A nil DeleteTime is stored as null and marks the row as live.
type Timestamps struct {
	CreateTime time.Time  `bson:"create_time"`
	UpdateTime time.Time  `bson:"update_time"`
	DeleteTime *time.Time `bson:"delete_time"`
}

func NewTimestamps(now time.Time) Timestamps {
	return Timestamps{CreateTime: now, UpdateTime: now}
}

func (t Timestamps) Deleted() bool {
	return t.DeleteTime != nil
}

func (t Timestamps) DTO() TimestampsDTO {
	return TimestampsDTO{
		CreateTime: t.CreateTime,
		UpdateTime: t.UpdateTime,
		DeleteTime: t.DeleteTime,
	}
}

type TimestampsDTO struct {
	CreateTime time.Time  `json:"createTime"`
	UpdateTime time.Time  `json:"updateTime"`
	DeleteTime *time.Time `json:"deleteTime"`
}

// Now is the timestamp written on create, update and delete. Mongo keeps
// millisecond precision, so the value is truncated up front to round-trip.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// NullableTime tells an omitted date apart from an explicit null, which
// clears the stored value on update.
type NullableTime struct {
	Set   bool
	Valid bool
	Time  time.Time
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Valid = false
		n.Time = time.Time{}
		return nil
	}

	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("date-time must be an RFC 3339 string: %w", err)
	}
	n.Valid = true
	n.Time = t.UTC().Truncate(time.Millisecond)
	return nil
}

func (n NullableTime) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Time)
}

// Ptr returns the stored form: nil for null or omitted.
func (n NullableTime) Ptr() *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time
	return &t
}

func TimeOf(t time.Time) NullableTime {
	return NullableTime{Set: true, Valid: true, Time: t}
}

// Attachment is a file reference embedded in articles and topics.
type Attachment struct {
	ID   string         `bson:"id,omitempty" json:"id,omitempty" validate:"omitempty,max=255"`
	URL  string         `bson:"url,omitempty" json:"url,omitempty" validate:"omitempty,url"`
	Name string         `bson:"name,omitempty" json:"name,omitempty" validate:"omitempty,max=255"`
	Type string         `bson:"type,omitempty" json:"type,omitempty" validate:"omitempty,max=100"`
	Size *int64         `bson:"size,omitempty" json:"size,omitempty" validate:"omitnil,gte=0"`
	Meta map[string]any `bson:"meta,omitempty" json:"meta,omitempty"`
}

// IsEmpty reports an attachment with no populated property.
func (a Attachment) IsEmpty() bool {
	return a.ID == "" && a.URL == "" && a.Name == "" && a.Type == "" && a.Size == nil && len(a.Meta) == 0
}
