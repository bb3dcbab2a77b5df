package models

import "time"

type FaultCategory string

const (
	FaultOverlappingVersions  FaultCategory = "overlapping-versions"
	FaultMultipleOpenVersions FaultCategory = "multiple-open-versions"
	FaultDanglingEffect       FaultCategory = "dangling-effect-reference"
)

type FaultSeverity string

const (
	SeverityError   FaultSeverity = "error"
	SeverityWarning FaultSeverity = "warning"
)

// Fault is a computed finding from a coherence scan; it is never persisted.
// Fingerprint is stable across rescans (category plus affected entity ids)
// so that review marks keep matching the same finding.
type Fault struct {
	Fingerprint string        `json:"fingerprint"`
	Category    FaultCategory `json:"category"`
	Severity    FaultSeverity `json:"severity"`
	ArticleID   uint          `json:"article_id,omitempty"`
	EffectID    uint          `json:"effect_id,omitempty"`
	VersionIDs  []uint        `json:"version_ids,omitempty"`
	Description string        `json:"description"`
	Reviewed    bool          `json:"reviewed"`
}

// FaultReview marks a scan finding as seen by an operator. Reviews never
// alter timeline data.
type FaultReview struct {
	ID          string    `json:"id" gorm:"primarykey"`
	Fingerprint string    `json:"fingerprint" gorm:"uniqueIndex;not null"`
	ReviewedBy  string    `json:"reviewed_by"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuditEntry records every explicit fix operation (review, deactivation).
type AuditEntry struct {
	ID         string    `json:"id" gorm:"primarykey"`
	Action     string    `json:"action" gorm:"not null"`
	EntityType string    `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	Actor      string    `json:"actor"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}
