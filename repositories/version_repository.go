package repositories

import (
	"fmt"
	"time"

	"regulatory-consolidation/models"

	"gorm.io/gorm"
)

type VersionRepository interface {
	GetByArticleID(articleID uint) ([]models.ArticleVersion, error)
	GetByID(id uint) (*models.ArticleVersion, error)
	GetActiveAtDate(articleID uint, date time.Time) ([]models.ArticleVersion, error)
	Create(version *models.ArticleVersion) error
	Update(version *models.ArticleVersion) error
	UpdateEffectiveTo(versionID uint, effectiveTo *time.Time) error
	DeleteWithRepair(version *models.ArticleVersion, predecessorID *uint, newEffectiveTo *time.Time) error
	GetAllGroupedByArticle() (map[uint][]models.ArticleVersion, error)
}

type versionRepository struct {
	db *gorm.DB
}

func NewVersionRepository(db *gorm.DB) VersionRepository {
	return &versionRepository{db: db}
}

func (r *versionRepository) GetByArticleID(articleID uint) ([]models.ArticleVersion, error) {
	var versions []models.ArticleVersion
	err := r.db.Where("article_id = ?", articleID).
		Order("effective_from desc").
		Find(&versions).Error
	return versions, err
}

func (r *versionRepository) GetByID(id uint) (*models.ArticleVersion, error) {
	var version models.ArticleVersion
	err := r.db.First(&version, id).Error
	return &version, err
}

// GetActiveAtDate returns every non-deleted version whose interval contains
// date, highest version_numero first. The non-overlap invariant means at most
// one row; callers tie-break on the first row when the data is faulty.
func (r *versionRepository) GetActiveAtDate(articleID uint, date time.Time) ([]models.ArticleVersion, error) {
	var versions []models.ArticleVersion
	err := r.db.
		Where("article_id = ? AND effective_from <= ? AND (effective_to IS NULL OR effective_to > ?)",
			articleID, date, date).
		Order("version_numero desc").
		Find(&versions).Error
	return versions, err
}

// Create assigns the next version_numero and inserts the version, rejecting
// intervals that overlap an existing non-deleted version of the same article.
// The whole operation runs under a per-article advisory lock so that two
// concurrent overlapping creates cannot both succeed.
func (r *versionRepository) Create(version *models.ArticleVersion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockArticle(tx, version.ArticleID); err != nil {
			return err
		}

		// numero is never reused, so the max runs over soft-deleted rows too
		var maxNumero *int
		err := tx.Unscoped().Model(&models.ArticleVersion{}).
			Where("article_id = ?", version.ArticleID).
			Select("MAX(version_numero)").
			Scan(&maxNumero).Error
		if err != nil {
			return err
		}
		version.VersionNumero = 1
		if maxNumero != nil {
			version.VersionNumero = *maxNumero + 1
		}

		query := tx.Model(&models.ArticleVersion{}).
			Where("article_id = ?", version.ArticleID).
			Where("effective_to IS NULL OR effective_to > ?", version.EffectiveFrom)
		if version.EffectiveTo != nil {
			query = query.Where("effective_from < ?", *version.EffectiveTo)
		}

		var overlapping int64
		if err := query.Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return models.ErrorValidation{
				Message: fmt.Sprintf("validity interval overlaps an existing version of article %d", version.ArticleID),
			}
		}

		return tx.Create(version).Error
	})
}

func (r *versionRepository) Update(version *models.ArticleVersion) error {
	return r.db.Save(version).Error
}

func (r *versionRepository) UpdateEffectiveTo(versionID uint, effectiveTo *time.Time) error {
	return r.db.Model(&models.ArticleVersion{}).
		Where("id = ?", versionID).
		Update("effective_to", effectiveTo).Error
}

// DeleteWithRepair soft-deletes the version and, when a predecessor repair
// was computed, extends that predecessor's effective_to in the same
// transaction so the timeline never transits through a broken state.
func (r *versionRepository) DeleteWithRepair(version *models.ArticleVersion, predecessorID *uint, newEffectiveTo *time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockArticle(tx, version.ArticleID); err != nil {
			return err
		}
		if predecessorID != nil {
			err := tx.Model(&models.ArticleVersion{}).
				Where("id = ?", *predecessorID).
				Update("effective_to", newEffectiveTo).Error
			if err != nil {
				return err
			}
		}
		return tx.Delete(&models.ArticleVersion{}, version.ID).Error
	})
}

// GetAllGroupedByArticle loads every non-deleted version for the coherence
// scan, keyed by article, oldest effective_from first.
func (r *versionRepository) GetAllGroupedByArticle() (map[uint][]models.ArticleVersion, error) {
	var versions []models.ArticleVersion
	err := r.db.Order("article_id asc, effective_from asc").Find(&versions).Error
	if err != nil {
		return nil, err
	}

	grouped := make(map[uint][]models.ArticleVersion)
	for _, v := range versions {
		grouped[v.ArticleID] = append(grouped[v.ArticleID], v)
	}
	return grouped, nil
}

func lockArticle(tx *gorm.DB, articleID uint) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(?)", int64(articleID)).Error
}
