package repositories

import (
	"regulatory-consolidation/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetByTexteID(texteID uint) ([]models.Article, error)
	GetAll() ([]models.Article, error)
	Update(article *models.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Texte").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetByTexteID(texteID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("texte_id = ?", texteID).
		Order("ordre_affichage asc, numero_article asc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetAll() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("id asc").Find(&articles).Error
	return articles, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}
