package models

import "time"

// WebhookEvent stores every inbound delivery with deduplication metadata.
// Refund and subscription events land here even though they are not acted
// upon yet, so operators can see their volume.
type WebhookEvent struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	DedupKey        string     `gorm:"type:varchar(191);not null;uniqueIndex:ux_webhook_events_dedup_key" json:"dedup_key"`
	Kind            string     `gorm:"type:varchar(50);not null;index" json:"kind"`
	PayloadJSON     string     `gorm:"type:longtext;not null" json:"payload_json"`
	ProcessedAt     *time.Time `gorm:"type:timestamp;default:null" json:"processed_at,omitempty"`
	ProcessingError string     `gorm:"type:text" json:"processing_error"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}
