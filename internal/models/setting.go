package models

import "time"

// SiteSetting is one row of editable site-wide text or image configuration,
// keyed by a unique string. Keys follow a loose prefix convention for UI
// grouping (site_, hero_, about_, contact_, business_, footer_) that is not
// enforced by the schema. A missing row for a known key means "use default".
type SiteSetting struct {
	ID          string    `db:"id" json:"id"`
	Key         string    `db:"key" json:"key"`
	Value       *string   `db:"value" json:"value"`
	Type        string    `db:"type" json:"type"`
	Description *string   `db:"description" json:"description"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// SettingUpsert is one row of a settings write. Type and Description are only
// used when the write inserts a new row; on conflict only the value changes.
type SettingUpsert struct {
	Key         string  `json:"key" binding:"required"`
	Value       *string `json:"value"`
	Type        string  `json:"type"`
	Description *string `json:"description"`
}
