package models

import "time"

type EntryState string

const (
	StateInForce       EntryState = "in-force"
	StateRepealed      EntryState = "repealed"
	StateInserted      EntryState = "inserted"
	StateNotYetInForce EntryState = "not-yet-in-force"
)

// EntryAnnotation points back at the amending side of an overlay: the text
// and article that repealed or inserted the entry, the date the effect took
// hold, and its citation.
type EntryAnnotation struct {
	SourceReference     string    `json:"source_reference"`
	SourceArticleNumero string    `json:"source_article_numero,omitempty"`
	EffectiveDate       time.Time `json:"effective_date"`
	Citation            string    `json:"citation,omitempty"`
}

// ConsolidatedEntry is one article of a text as it legally stood at the
// requested date. Repealed entries keep their content; not-yet-in-force
// entries withhold it.
type ConsolidatedEntry struct {
	ArticleID        uint             `json:"article_id"`
	NumeroArticle    string           `json:"numero_article"`
	TitreCourt       string           `json:"titre_court,omitempty"`
	Contenu          string           `json:"contenu"`
	State            EntryState       `json:"state"`
	Annotation       *EntryAnnotation `json:"annotation,omitempty"`
	EffectiveFrom    *time.Time       `json:"effective_from,omitempty"`
	EffectiveTo      *time.Time       `json:"effective_to,omitempty"`
	ModificationType ModificationType `json:"modification_type,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	VersionCount     int              `json:"version_count"`
}
