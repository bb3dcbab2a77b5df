package repositories

import (
	"regulatory-consolidation/models"

	"gorm.io/gorm"
)

type AuditRepository interface {
	CreateAudit(entry *models.AuditEntry) error
	CreateReview(review *models.FaultReview) error
	GetReviewByFingerprint(fingerprint string) (*models.FaultReview, error)
	GetReviewedFingerprints() (map[string]bool, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) CreateAudit(entry *models.AuditEntry) error {
	return r.db.Create(entry).Error
}

func (r *auditRepository) CreateReview(review *models.FaultReview) error {
	return r.db.Create(review).Error
}

func (r *auditRepository) GetReviewByFingerprint(fingerprint string) (*models.FaultReview, error) {
	var review models.FaultReview
	err := r.db.Where("fingerprint = ?", fingerprint).First(&review).Error
	return &review, err
}

func (r *auditRepository) GetReviewedFingerprints() (map[string]bool, error) {
	var reviews []models.FaultReview
	if err := r.db.Find(&reviews).Error; err != nil {
		return nil, err
	}

	reviewed := make(map[string]bool, len(reviews))
	for _, review := range reviews {
		reviewed[review.Fingerprint] = true
	}
	return reviewed, nil
}
