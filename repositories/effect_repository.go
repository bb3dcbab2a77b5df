package repositories

import (
	"regulatory-consolidation/models"

	"gorm.io/gorm"
)

type EffectRepository interface {
	Create(effect *models.LegalEffect) error
	GetByID(id uint) (*models.LegalEffect, error)
	Update(effect *models.LegalEffect) error
	GetByTargetArticleID(articleID uint) ([]models.LegalEffect, error)
	GetByTargetTexteID(texteID uint) ([]models.LegalEffect, error)
	GetBySourceArticleID(articleID uint) ([]models.LegalEffect, error)
	GetAll() ([]models.LegalEffect, error)
}

type effectRepository struct {
	db *gorm.DB
}

func NewEffectRepository(db *gorm.DB) EffectRepository {
	return &effectRepository{db: db}
}

func (r *effectRepository) Create(effect *models.LegalEffect) error {
	return r.db.Create(effect).Error
}

func (r *effectRepository) GetByID(id uint) (*models.LegalEffect, error) {
	var effect models.LegalEffect
	err := r.db.Preload("SourceArticle.Texte").First(&effect, id).Error
	return &effect, err
}

func (r *effectRepository) Update(effect *models.LegalEffect) error {
	return r.db.Save(effect).Error
}

func (r *effectRepository) GetByTargetArticleID(articleID uint) ([]models.LegalEffect, error) {
	var effects []models.LegalEffect
	err := r.db.Where("target_article_id = ?", articleID).
		Preload("SourceArticle.Texte").
		Order("date_effet desc").
		Find(&effects).Error
	return effects, err
}

func (r *effectRepository) GetByTargetTexteID(texteID uint) ([]models.LegalEffect, error) {
	var effects []models.LegalEffect
	err := r.db.Where("target_texte_id = ?", texteID).
		Preload("SourceArticle.Texte").
		Order("date_effet desc").
		Find(&effects).Error
	return effects, err
}

func (r *effectRepository) GetBySourceArticleID(articleID uint) ([]models.LegalEffect, error) {
	var effects []models.LegalEffect
	err := r.db.Where("source_article_id = ?", articleID).
		Preload("TargetArticle").
		Preload("TargetTexte").
		Order("date_effet desc").
		Find(&effects).Error
	return effects, err
}

func (r *effectRepository) GetAll() ([]models.LegalEffect, error) {
	var effects []models.LegalEffect
	err := r.db.Order("id asc").Find(&effects).Error
	return effects, err
}
