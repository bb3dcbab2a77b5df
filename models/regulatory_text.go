package models

import (
	"time"

	"gorm.io/gorm"
)

type TextStatus string

const (
	TextStatusInForce   TextStatus = "en_vigueur"
	TextStatusAmended   TextStatus = "modifie"
	TextStatusRepealed  TextStatus = "abroge"
	TextStatusSuspended TextStatus = "suspendu"
)

// RegulatoryText identifies a legal instrument (law, decree, order, circular).
// Immutable once published except for lifecycle status transitions.
type RegulatoryText struct {
	ID                uint           `json:"id" gorm:"primarykey"`
	Kind              string         `json:"kind" gorm:"not null"`
	OfficialReference string         `json:"official_reference" gorm:"uniqueIndex;not null"`
	Title             string         `json:"title" gorm:"not null"`
	IssuingAuthority  string         `json:"issuing_authority"`
	PublicationDate   time.Time      `json:"publication_date"`
	Status            TextStatus     `json:"status" gorm:"default:'en_vigueur'"`
	Articles          []Article      `json:"articles,omitempty" gorm:"foreignKey:TexteID"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

func (RegulatoryText) TableName() string {
	return "regulatory_texts"
}
