package models

import (
	"time"

	"gorm.io/gorm"
)

type ModificationType string

const (
	ModificationAjoute   ModificationType = "ajoute"
	ModificationModifie  ModificationType = "modifie"
	ModificationAbroge   ModificationType = "abroge"
	ModificationRemplace ModificationType = "remplace"
	ModificationInsere   ModificationType = "insere"
)

// ArticleVersion is one entry in an article's timeline, valid over the
// half-open interval [EffectiveFrom, EffectiveTo). A nil EffectiveTo means
// the version is open-ended. VersionNumero increases monotonically per
// article and is never reused, including across soft deletes.
type ArticleVersion struct {
	ID                uint             `json:"id" gorm:"primarykey"`
	ArticleID         uint             `json:"article_id" gorm:"not null;index"`
	Article           *Article         `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
	VersionNumero     int              `json:"version_numero" gorm:"column:version_numero;not null"`
	VersionLabel      string           `json:"version_label"`
	Contenu           string           `json:"contenu" gorm:"type:text"`
	DateVersion       time.Time        `json:"date_version"`
	EffectiveFrom     time.Time        `json:"effective_from" gorm:"not null;index"`
	EffectiveTo       *time.Time       `json:"effective_to"`
	ModificationType  ModificationType `json:"modification_type"`
	AmendingTexteID   *uint            `json:"amending_texte_id"`
	AmendingArticleID *uint            `json:"amending_article_id"`
	Notes             string           `json:"notes"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `json:"-" gorm:"index"`
}
