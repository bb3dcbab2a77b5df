package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"regulatory-consolidation/models"
	"regulatory-consolidation/repositories"

	"gorm.io/gorm"
)

type VersionService interface {
	GetVersionsForArticle(articleID uint) ([]models.ArticleVersion, error)
	GetActiveVersionAtDate(articleID uint, date time.Time) (*models.ArticleVersion, error)
	CreateVersion(articleID uint, req models.CreateVersionRequest) (*models.ArticleVersion, error)
	UpdateVersion(versionID uint, req models.UpdateVersionRequest) (*models.ArticleVersion, error)
	DeleteVersionWithRepair(versionID uint) error
}

type versionService struct {
	versionRepo repositories.VersionRepository
	articleRepo repositories.ArticleRepository
}

func NewVersionService(versionRepo repositories.VersionRepository, articleRepo repositories.ArticleRepository) VersionService {
	return &versionService{
		versionRepo: versionRepo,
		articleRepo: articleRepo,
	}
}

func (s *versionService) GetVersionsForArticle(articleID uint) ([]models.ArticleVersion, error) {
	return s.versionRepo.GetByArticleID(articleID)
}

// GetActiveVersionAtDate returns the version whose interval contains date,
// or nil when none does. Overlapping persisted intervals are a data fault:
// the read still succeeds with the highest version_numero, and the fault is
// logged for the coherence scan instead of failing the caller.
func (s *versionService) GetActiveVersionAtDate(articleID uint, date time.Time) (*models.ArticleVersion, error) {
	candidates, err := s.versionRepo.GetActiveAtDate(articleID, date)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	if len(candidates) > 1 {
		fault := models.DataFault{
			Category:    models.FaultOverlappingVersions,
			ArticleID:   articleID,
			Description: fmt.Sprintf("article %d has %d versions active at %s, keeping version_numero %d", articleID, len(candidates), date.Format(dateLayout), candidates[0].VersionNumero),
		}
		log.Printf("data fault: %s", fault.Error())
	}
	return &candidates[0], nil
}

func (s *versionService) CreateVersion(articleID uint, req models.CreateVersionRequest) (*models.ArticleVersion, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: fmt.Sprintf("article %d not found", articleID)}
		}
		return nil, err
	}

	effectiveFrom, err := ParseDate(req.EffectiveFrom)
	if err != nil {
		return nil, err
	}

	var effectiveTo *time.Time
	if req.EffectiveTo != "" {
		to, err := ParseDate(req.EffectiveTo)
		if err != nil {
			return nil, err
		}
		if !to.After(effectiveFrom) {
			return nil, models.ErrorValidation{Message: "effective_to must be after effective_from"}
		}
		effectiveTo = &to
	}

	dateVersion := time.Now()
	if req.DateVersion != "" {
		dv, err := ParseDate(req.DateVersion)
		if err != nil {
			return nil, err
		}
		dateVersion = dv
	}

	version := &models.ArticleVersion{
		ArticleID:         articleID,
		VersionLabel:      req.VersionLabel,
		Contenu:           req.Contenu,
		DateVersion:       dateVersion,
		EffectiveFrom:     effectiveFrom,
		EffectiveTo:       effectiveTo,
		ModificationType:  models.ModificationType(req.ModificationType),
		AmendingTexteID:   req.AmendingTexteID,
		AmendingArticleID: req.AmendingArticleID,
		Notes:             req.Notes,
	}

	// numero assignment and the overlap check both happen inside the
	// repository's per-article critical section
	if err := s.versionRepo.Create(version); err != nil {
		return nil, err
	}

	return s.versionRepo.GetByID(version.ID)
}

func (s *versionService) UpdateVersion(versionID uint, req models.UpdateVersionRequest) (*models.ArticleVersion, error) {
	version, err := s.versionRepo.GetByID(versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: fmt.Sprintf("version %d not found", versionID)}
		}
		return nil, err
	}

	version.VersionLabel = req.VersionLabel
	version.Notes = req.Notes
	if err := s.versionRepo.Update(version); err != nil {
		return nil, err
	}
	return version, nil
}

// DeleteVersionWithRepair removes a version while keeping the timeline
// contiguous: deleting a middle version extends its predecessor's
// effective_to over the removed interval. Deleting the terminal version
// needs no repair.
func (s *versionService) DeleteVersionWithRepair(versionID uint) error {
	version, err := s.versionRepo.GetByID(versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: fmt.Sprintf("version %d not found", versionID)}
		}
		return err
	}

	siblings, err := s.versionRepo.GetByArticleID(version.ArticleID)
	if err != nil {
		return err
	}

	var predecessorID *uint
	var newEffectiveTo *time.Time
	if !isLatest(*version, siblings) {
		if pred := precedingVersion(*version, siblings); pred != nil {
			predecessorID = &pred.ID
			newEffectiveTo = version.EffectiveTo
		}
	}

	return s.versionRepo.DeleteWithRepair(version, predecessorID, newEffectiveTo)
}

func isLatest(version models.ArticleVersion, siblings []models.ArticleVersion) bool {
	for _, sibling := range siblings {
		if sibling.ID != version.ID && sibling.EffectiveFrom.After(version.EffectiveFrom) {
			return false
		}
	}
	return true
}

// precedingVersion finds the sibling with the greatest effective_from still
// before the given version's.
func precedingVersion(version models.ArticleVersion, siblings []models.ArticleVersion) *models.ArticleVersion {
	var pred *models.ArticleVersion
	for i := range siblings {
		s := &siblings[i]
		if s.ID == version.ID || !s.EffectiveFrom.Before(version.EffectiveFrom) {
			continue
		}
		if pred == nil || s.EffectiveFrom.After(pred.EffectiveFrom) {
			pred = s
		}
	}
	return pred
}
