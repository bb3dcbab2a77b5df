package services

import (
	"errors"
	"fmt"

	"regulatory-consolidation/models"
	"regulatory-consolidation/repositories"

	"gorm.io/gorm"
)

type TexteService interface {
	CreateTexte(req models.CreateTexteRequest) (*models.RegulatoryText, error)
	GetTexte(id uint) (*models.RegulatoryText, error)
	GetTextes(params models.TexteListParams) ([]models.RegulatoryText, int64, error)
	CreateArticle(texteID uint, req models.CreateArticleRequest) (*models.Article, error)
	GetArticles(texteID uint) ([]models.Article, error)
}

type texteService struct {
	texteRepo   repositories.TextRepository
	articleRepo repositories.ArticleRepository
}

func NewTexteService(texteRepo repositories.TextRepository, articleRepo repositories.ArticleRepository) TexteService {
	return &texteService{
		texteRepo:   texteRepo,
		articleRepo: articleRepo,
	}
}

func (s *texteService) CreateTexte(req models.CreateTexteRequest) (*models.RegulatoryText, error) {
	publicationDate, err := ParseDate(req.PublicationDate)
	if err != nil {
		return nil, err
	}

	texte := &models.RegulatoryText{
		Kind:              req.Kind,
		OfficialReference: req.OfficialReference,
		Title:             req.Title,
		IssuingAuthority:  req.IssuingAuthority,
		PublicationDate:   publicationDate,
		Status:            models.TextStatusInForce,
	}
	if err := s.texteRepo.Create(texte); err != nil {
		return nil, err
	}
	return texte, nil
}

func (s *texteService) GetTexte(id uint) (*models.RegulatoryText, error) {
	texte, err := s.texteRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: fmt.Sprintf("text %d not found", id)}
		}
		return nil, err
	}
	return texte, nil
}

func (s *texteService) GetTextes(params models.TexteListParams) ([]models.RegulatoryText, int64, error) {
	return s.texteRepo.GetList(params)
}

func (s *texteService) CreateArticle(texteID uint, req models.CreateArticleRequest) (*models.Article, error) {
	if _, err := s.GetTexte(texteID); err != nil {
		return nil, err
	}

	article := &models.Article{
		TexteID:           texteID,
		NumeroArticle:     req.NumeroArticle,
		OrdreAffichage:    req.OrdreAffichage,
		TitreCourt:        req.TitreCourt,
		IsIntroductory:    req.IsIntroductory,
		CarriesObligation: req.CarriesObligation,
		Contenu:           req.Contenu,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *texteService) GetArticles(texteID uint) ([]models.Article, error) {
	if _, err := s.GetTexte(texteID); err != nil {
		return nil, err
	}
	return s.articleRepo.GetByTexteID(texteID)
}
