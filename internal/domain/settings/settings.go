package settings

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var ErrSettingNotFound = errors.New("setting not found")

// Setting is one keyed JSON document of site configuration managed from the
// admin settings page (business hours, contact info, hero copy, ...).
type Setting struct {
	Key       string          `gorm:"primaryKey" json:"key"`
	Value     json.RawMessage `gorm:"serializer:json;type:json" json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Setting) TableName() string { return "site_settings" }

type Store interface {
	Get(ctx context.Context, key string) (*Setting, error)
	Put(ctx context.Context, key string, value json.RawMessage) (*Setting, error)
	All(ctx context.Context) ([]Setting, error)
}
