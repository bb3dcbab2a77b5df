package services

import (
	"context"
	"errors"
	"fmt"

	"regulatory-consolidation/models"
	"regulatory-consolidation/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoherenceService interface {
	ScanTimelineFaults(ctx context.Context) ([]models.Fault, error)
	ReviewFault(fingerprint, actor, note string) (*models.FaultReview, error)
	DeactivateSupersededVersion(articleID uint, actor string) (*models.ArticleVersion, error)
}

type coherenceService struct {
	versionRepo repositories.VersionRepository
	effectRepo  repositories.EffectRepository
	articleRepo repositories.ArticleRepository
	texteRepo   repositories.TextRepository
	auditRepo   repositories.AuditRepository
}

func NewCoherenceService(versionRepo repositories.VersionRepository, effectRepo repositories.EffectRepository, articleRepo repositories.ArticleRepository, texteRepo repositories.TextRepository, auditRepo repositories.AuditRepository) CoherenceService {
	return &coherenceService{
		versionRepo: versionRepo,
		effectRepo:  effectRepo,
		articleRepo: articleRepo,
		texteRepo:   texteRepo,
		auditRepo:   auditRepo,
	}
}

// ScanTimelineFaults recomputes every advisory finding from the current
// store state. The scan never mutates data; fingerprints are stable so
// review marks from earlier scans still apply.
func (s *coherenceService) ScanTimelineFaults(ctx context.Context) ([]models.Fault, error) {
	faults := []models.Fault{}

	versionsByArticle, err := s.versionRepo.GetAllGroupedByArticle()
	if err != nil {
		return nil, err
	}

	for articleID, versions := range versionsByArticle {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		faults = append(faults, scanArticleTimeline(articleID, versions)...)
	}

	effectFaults, err := s.scanEffectReferences(ctx)
	if err != nil {
		return nil, err
	}
	faults = append(faults, effectFaults...)

	reviewed, err := s.auditRepo.GetReviewedFingerprints()
	if err != nil {
		return nil, err
	}
	for i := range faults {
		faults[i].Reviewed = reviewed[faults[i].Fingerprint]
	}

	return faults, nil
}

// scanArticleTimeline checks one article's versions, oldest first, for
// overlapping intervals and for more than one open-ended version.
func scanArticleTimeline(articleID uint, versions []models.ArticleVersion) []models.Fault {
	var faults []models.Fault

	var openIDs []uint
	for _, v := range versions {
		if v.EffectiveTo == nil {
			openIDs = append(openIDs, v.ID)
		}
	}
	if len(openIDs) > 1 {
		faults = append(faults, models.Fault{
			Fingerprint: fmt.Sprintf("%s:%d", models.FaultMultipleOpenVersions, articleID),
			Category:    models.FaultMultipleOpenVersions,
			Severity:    models.SeverityError,
			ArticleID:   articleID,
			VersionIDs:  openIDs,
			Description: fmt.Sprintf("article %d has %d open-ended versions, expected at most one", articleID, len(openIDs)),
		})
	}

	for i := 0; i < len(versions); i++ {
		for j := i + 1; j < len(versions); j++ {
			a, b := versions[i], versions[j]
			if !IntervalsOverlap(a.EffectiveFrom, a.EffectiveTo, b.EffectiveFrom, b.EffectiveTo) {
				continue
			}
			faults = append(faults, models.Fault{
				Fingerprint: fmt.Sprintf("%s:%d:%d:%d", models.FaultOverlappingVersions, articleID, a.ID, b.ID),
				Category:    models.FaultOverlappingVersions,
				Severity:    models.SeverityError,
				ArticleID:   articleID,
				VersionIDs:  []uint{a.ID, b.ID},
				Description: fmt.Sprintf("article %d versions %d and %d have overlapping validity intervals", articleID, a.VersionNumero, b.VersionNumero),
			})
		}
	}

	return faults
}

func (s *coherenceService) scanEffectReferences(ctx context.Context) ([]models.Fault, error) {
	effects, err := s.effectRepo.GetAll()
	if err != nil {
		return nil, err
	}

	var faults []models.Fault
	for _, effect := range effects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var missing string
		if _, err := s.articleRepo.GetByID(effect.SourceArticleID); errors.Is(err, gorm.ErrRecordNotFound) {
			missing = fmt.Sprintf("source article %d", effect.SourceArticleID)
		} else if err != nil {
			return nil, err
		}
		if missing == "" && effect.TargetArticleID != nil {
			if _, err := s.articleRepo.GetByID(*effect.TargetArticleID); errors.Is(err, gorm.ErrRecordNotFound) {
				missing = fmt.Sprintf("target article %d", *effect.TargetArticleID)
			} else if err != nil {
				return nil, err
			}
		}
		if missing == "" && effect.TargetTexteID != nil {
			if _, err := s.texteRepo.GetByID(*effect.TargetTexteID); errors.Is(err, gorm.ErrRecordNotFound) {
				missing = fmt.Sprintf("target text %d", *effect.TargetTexteID)
			} else if err != nil {
				return nil, err
			}
		}
		if missing == "" {
			continue
		}

		faults = append(faults, models.Fault{
			Fingerprint: fmt.Sprintf("%s:%d", models.FaultDanglingEffect, effect.ID),
			Category:    models.FaultDanglingEffect,
			Severity:    models.SeverityWarning,
			EffectID:    effect.ID,
			Description: fmt.Sprintf("effect %d references missing %s", effect.ID, missing),
		})
	}

	return faults, nil
}

// ReviewFault marks a finding as seen. The mark and its audit entry are the
// only writes; timeline data stays untouched.
func (s *coherenceService) ReviewFault(fingerprint, actor, note string) (*models.FaultReview, error) {
	if fingerprint == "" {
		return nil, models.ErrorValidation{Message: "fingerprint is required"}
	}
	if existing, err := s.auditRepo.GetReviewByFingerprint(fingerprint); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &models.FaultReview{
		ID:          uuid.NewString(),
		Fingerprint: fingerprint,
		ReviewedBy:  actor,
		Note:        note,
	}
	if err := s.auditRepo.CreateReview(review); err != nil {
		return nil, err
	}

	audit := &models.AuditEntry{
		ID:         uuid.NewString(),
		Action:     "fault-reviewed",
		EntityType: "fault",
		Actor:      actor,
		Detail:     fingerprint,
	}
	if err := s.auditRepo.CreateAudit(audit); err != nil {
		return nil, err
	}

	return review, nil
}

// DeactivateSupersededVersion is the one explicit fix this service offers
// for an overlapping pair: it closes the provably superseded version (the
// lower version_numero with the earlier effective_from) at the winner's
// effective_from. Content is never deleted and the operation is audited.
func (s *coherenceService) DeactivateSupersededVersion(articleID uint, actor string) (*models.ArticleVersion, error) {
	versions, err := s.versionRepo.GetByArticleID(articleID)
	if err != nil {
		return nil, err
	}

	var loser, winner *models.ArticleVersion
	for i := 0; i < len(versions); i++ {
		for j := i + 1; j < len(versions); j++ {
			a, b := &versions[i], &versions[j]
			if !IntervalsOverlap(a.EffectiveFrom, a.EffectiveTo, b.EffectiveFrom, b.EffectiveTo) {
				continue
			}
			w, l := a, b
			if l.VersionNumero > w.VersionNumero {
				w, l = l, w
			}
			// only provably superseded: the loser must have started first
			if !l.EffectiveFrom.Before(w.EffectiveFrom) {
				return nil, models.ErrorValidation{Message: fmt.Sprintf("article %d overlap is not provably superseded, manual review required", articleID)}
			}
			winner, loser = w, l
		}
		if loser != nil {
			break
		}
	}
	if loser == nil {
		return nil, models.ErrorValidation{Message: fmt.Sprintf("article %d has no overlapping versions to deactivate", articleID)}
	}

	closeAt := winner.EffectiveFrom
	if err := s.versionRepo.UpdateEffectiveTo(loser.ID, &closeAt); err != nil {
		return nil, err
	}

	audit := &models.AuditEntry{
		ID:         uuid.NewString(),
		Action:     "version-deactivated",
		EntityType: "article_version",
		EntityID:   loser.ID,
		Actor:      actor,
		Detail:     fmt.Sprintf("closed version %d of article %d at %s, superseded by version %d", loser.VersionNumero, articleID, closeAt.Format(dateLayout), winner.VersionNumero),
	}
	if err := s.auditRepo.CreateAudit(audit); err != nil {
		return nil, err
	}

	loser.EffectiveTo = &closeAt
	return loser, nil
}
