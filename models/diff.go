package models

import "time"

// VersionSummary is one history entry of an article, annotated with whether
// the version is active relative to the current date.
type VersionSummary struct {
	ID               uint             `json:"id"`
	VersionNumero    int              `json:"version_numero"`
	VersionLabel     string           `json:"version_label"`
	DateVersion      time.Time        `json:"date_version"`
	EffectiveFrom    time.Time        `json:"effective_from"`
	EffectiveTo      *time.Time       `json:"effective_to"`
	ModificationType ModificationType `json:"modification_type"`
	IsActiveNow      bool             `json:"is_active_now"`
}

type DiffOp string

const (
	DiffEqual  DiffOp = "equal"
	DiffInsert DiffOp = "insert"
	DiffDelete DiffOp = "delete"
)

// DiffSpan is one operation of the edit script, suitable for side-by-side or
// unified rendering.
type DiffSpan struct {
	Op   DiffOp `json:"op"`
	Text string `json:"text"`
}

type DiffSide struct {
	VersionID     uint   `json:"version_id"`
	VersionNumero int    `json:"version_numero"`
	VersionLabel  string `json:"version_label"`
	Chars         int    `json:"chars"`
	Words         int    `json:"words"`
}

type DiffStats struct {
	CharDelta int `json:"char_delta"`
	WordDelta int `json:"word_delta"`
	// PercentChange is round((after-before)/before*100), 0 when the before
	// side is empty.
	PercentChange int `json:"percent_change"`
}

// DiffResult compares two versions of the same article after markup has been
// stripped. The caller designates which side is "before"; swapping sides
// swaps labels and delta signs but not magnitudes.
type DiffResult struct {
	Before DiffSide   `json:"before"`
	After  DiffSide   `json:"after"`
	Script []DiffSpan `json:"script"`
	Stats  DiffStats  `json:"stats"`
}
