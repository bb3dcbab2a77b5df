package repositories

import (
	"fmt"

	"regulatory-consolidation/models"

	"gorm.io/gorm"
)

type TextRepository interface {
	Create(texte *models.RegulatoryText) error
	GetByID(id uint) (*models.RegulatoryText, error)
	GetList(params models.TexteListParams) ([]models.RegulatoryText, int64, error)
	Update(texte *models.RegulatoryText) error
}

type textRepository struct {
	db *gorm.DB
}

func NewTextRepository(db *gorm.DB) TextRepository {
	return &textRepository{db: db}
}

func (r *textRepository) Create(texte *models.RegulatoryText) error {
	return r.db.Create(texte).Error
}

func (r *textRepository) GetByID(id uint) (*models.RegulatoryText, error) {
	var texte models.RegulatoryText
	err := r.db.First(&texte, id).Error
	return &texte, err
}

func (r *textRepository) GetList(params models.TexteListParams) ([]models.RegulatoryText, int64, error) {
	var textes []models.RegulatoryText
	var total int64

	query := r.db.Model(&models.RegulatoryText{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Kind != "" {
		query = query.Where("kind = ?", params.Kind)
	}

	query.Count(&total)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "publication_date"
	}
	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&textes).Error

	return textes, total, err
}

func (r *textRepository) Update(texte *models.RegulatoryText) error {
	return r.db.Save(texte).Error
}
