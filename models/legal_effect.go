package models

import (
	"time"

	"gorm.io/gorm"
)

type EffectKind string

const (
	// EffectAbroge repeals an existing article of another text.
	EffectAbroge EffectKind = "ABROGE"
	// EffectAjoute inserts the source article's current content into a
	// target text.
	EffectAjoute EffectKind = "AJOUTE"
)

// LegalEffect is a directed, time-bounded relation from a source article to
// either a target article (ABROGE) or a target text (AJOUTE). Effects are an
// overlay applied at consolidation time, independent of the target's own
// version timeline; within its interval an ABROGE overlay takes precedence
// over whatever version would otherwise be active.
type LegalEffect struct {
	ID                uint            `json:"id" gorm:"primarykey"`
	Kind              EffectKind      `json:"kind" gorm:"not null"`
	SourceArticleID   uint            `json:"source_article_id" gorm:"not null;index"`
	SourceArticle     *Article        `json:"source_article,omitempty" gorm:"foreignKey:SourceArticleID"`
	TargetArticleID   *uint           `json:"target_article_id" gorm:"index"`
	TargetArticle     *Article        `json:"target_article,omitempty" gorm:"foreignKey:TargetArticleID"`
	TargetTexteID     *uint           `json:"target_texte_id" gorm:"index"`
	TargetTexte       *RegulatoryText `json:"target_texte,omitempty" gorm:"foreignKey:TargetTexteID"`
	DateEffet         time.Time       `json:"date_effet" gorm:"column:date_effet;not null"`
	DateFinEffet      *time.Time      `json:"date_fin_effet" gorm:"column:date_fin_effet"`
	ReferenceCitation string          `json:"reference_citation"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `json:"-" gorm:"index"`
}
