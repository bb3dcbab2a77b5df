package models

import (
	"time"

	"gorm.io/gorm"
)

// Article belongs to exactly one RegulatoryText. Contenu holds the latest
// authored content, distinct from the versioned history; insertion effects
// always read Contenu, never a version.
type Article struct {
	ID                uint             `json:"id" gorm:"primarykey"`
	TexteID           uint             `json:"texte_id" gorm:"not null;index"`
	Texte             *RegulatoryText  `json:"texte,omitempty" gorm:"foreignKey:TexteID"`
	NumeroArticle     string           `json:"numero_article" gorm:"not null"`
	OrdreAffichage    int              `json:"ordre_affichage" gorm:"default:0"`
	TitreCourt        string           `json:"titre_court"`
	IsIntroductory    bool             `json:"is_introductory" gorm:"default:false"`
	CarriesObligation bool             `json:"carries_obligation" gorm:"default:false"`
	Contenu           string           `json:"contenu" gorm:"type:text"`
	Versions          []ArticleVersion `json:"versions,omitempty" gorm:"foreignKey:ArticleID"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `json:"-" gorm:"index"`
}
