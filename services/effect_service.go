package services

import (
	"errors"
	"fmt"
	"time"

	"regulatory-consolidation/models"
	"regulatory-consolidation/repositories"

	"gorm.io/gorm"
)

type EffectService interface {
	CreateEffect(req models.CreateEffectRequest) (*models.LegalEffect, error)
	GetEffectsTargetingArticle(articleID uint) ([]models.LegalEffect, error)
	GetEffectsTargetingText(texteID uint) ([]models.LegalEffect, error)
	GetEffectsFromArticle(articleID uint) ([]models.LegalEffect, error)
	EndEffect(effectID uint, endDate time.Time) (*models.LegalEffect, error)
}

type effectService struct {
	effectRepo  repositories.EffectRepository
	articleRepo repositories.ArticleRepository
	texteRepo   repositories.TextRepository
}

func NewEffectService(effectRepo repositories.EffectRepository, articleRepo repositories.ArticleRepository, texteRepo repositories.TextRepository) EffectService {
	return &effectService{
		effectRepo:  effectRepo,
		articleRepo: articleRepo,
		texteRepo:   texteRepo,
	}
}

// IsActiveAt reports whether the effect applies on the given date. The start
// day counts, the end day does not; a missing end means the effect never
// lapses.
func IsActiveAt(effect models.LegalEffect, date time.Time) bool {
	return IntervalContains(effect.DateEffet, effect.DateFinEffet, date)
}

func (s *effectService) CreateEffect(req models.CreateEffectRequest) (*models.LegalEffect, error) {
	dateEffet, err := ParseDate(req.DateEffet)
	if err != nil {
		return nil, err
	}

	var dateFinEffet *time.Time
	if req.DateFinEffet != "" {
		end, err := ParseDate(req.DateFinEffet)
		if err != nil {
			return nil, err
		}
		if !end.After(dateEffet) {
			return nil, models.ErrorValidation{Message: "date_fin_effet must be after date_effet"}
		}
		dateFinEffet = &end
	}

	if _, err := s.articleRepo.GetByID(req.SourceArticleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: fmt.Sprintf("source article %d not found", req.SourceArticleID)}
		}
		return nil, err
	}

	kind := models.EffectKind(req.Kind)
	switch kind {
	case models.EffectAbroge:
		if req.TargetArticleID == nil {
			return nil, models.ErrorValidation{Message: "ABROGE effect requires a target_article_id"}
		}
		if *req.TargetArticleID == req.SourceArticleID {
			return nil, models.ErrorValidation{Message: "an article cannot repeal itself"}
		}
		if _, err := s.articleRepo.GetByID(*req.TargetArticleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: fmt.Sprintf("target article %d not found", *req.TargetArticleID)}
			}
			return nil, err
		}
	case models.EffectAjoute:
		if req.TargetTexteID == nil {
			return nil, models.ErrorValidation{Message: "AJOUTE effect requires a target_texte_id"}
		}
		if _, err := s.texteRepo.GetByID(*req.TargetTexteID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: fmt.Sprintf("target text %d not found", *req.TargetTexteID)}
			}
			return nil, err
		}
	default:
		return nil, models.ErrorValidation{Message: fmt.Sprintf("unknown effect kind %q", req.Kind)}
	}

	effect := &models.LegalEffect{
		Kind:              kind,
		SourceArticleID:   req.SourceArticleID,
		DateEffet:         dateEffet,
		DateFinEffet:      dateFinEffet,
		ReferenceCitation: req.ReferenceCitation,
		Notes:             req.Notes,
	}
	if kind == models.EffectAbroge {
		effect.TargetArticleID = req.TargetArticleID
	} else {
		effect.TargetTexteID = req.TargetTexteID
	}

	if err := s.effectRepo.Create(effect); err != nil {
		return nil, err
	}

	return s.effectRepo.GetByID(effect.ID)
}

func (s *effectService) GetEffectsTargetingArticle(articleID uint) ([]models.LegalEffect, error) {
	return s.effectRepo.GetByTargetArticleID(articleID)
}

func (s *effectService) GetEffectsTargetingText(texteID uint) ([]models.LegalEffect, error) {
	return s.effectRepo.GetByTargetTexteID(texteID)
}

func (s *effectService) GetEffectsFromArticle(articleID uint) ([]models.LegalEffect, error) {
	return s.effectRepo.GetBySourceArticleID(articleID)
}

// EndEffect closes an open effect at the given date.
func (s *effectService) EndEffect(effectID uint, endDate time.Time) (*models.LegalEffect, error) {
	effect, err := s.effectRepo.GetByID(effectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: fmt.Sprintf("effect %d not found", effectID)}
		}
		return nil, err
	}

	if !endDate.After(effect.DateEffet) {
		return nil, models.ErrorValidation{Message: "date_fin_effet must be after date_effet"}
	}

	effect.DateFinEffet = &endDate
	if err := s.effectRepo.Update(effect); err != nil {
		return nil, err
	}
	return effect, nil
}
