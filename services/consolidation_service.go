package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"regulatory-consolidation/models"
	"regulatory-consolidation/repositories"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// resolveFanOut bounds how many per-article lookups run at once.
const resolveFanOut = 8

type ConsolidationService interface {
	ResolveConsolidatedText(ctx context.Context, texteID uint, date time.Time) ([]models.ConsolidatedEntry, error)
}

type consolidationService struct {
	texteRepo   repositories.TextRepository
	articleRepo repositories.ArticleRepository
	versionSvc  VersionService
	effectSvc   EffectService
}

func NewConsolidationService(texteRepo repositories.TextRepository, articleRepo repositories.ArticleRepository, versionSvc VersionService, effectSvc EffectService) ConsolidationService {
	return &consolidationService{
		texteRepo:   texteRepo,
		articleRepo: articleRepo,
		versionSvc:  versionSvc,
		effectSvc:   effectSvc,
	}
}

// ResolveConsolidatedText computes the articles of a text as they legally
// stood on the given date: each native article resolved through its version
// timeline with active repeal overlays applied, plus pseudo-entries for
// articles inserted by other texts' AJOUTE effects. Per-article lookups are
// independent reads and fan out in parallel; the final sort is the join
// point, so output order does not depend on completion order.
func (s *consolidationService) ResolveConsolidatedText(ctx context.Context, texteID uint, date time.Time) ([]models.ConsolidatedEntry, error) {
	if _, err := s.texteRepo.GetByID(texteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: fmt.Sprintf("text %d not found", texteID)}
		}
		return nil, err
	}

	articles, err := s.articleRepo.GetByTexteID(texteID)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveFanOut)

	native := make([]models.ConsolidatedEntry, len(articles))
	for i, article := range articles {
		i, article := i, article
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := s.resolveArticle(article, date)
			if err != nil {
				return err
			}
			native[i] = entry
			return nil
		})
	}

	var inserted []models.ConsolidatedEntry
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries, err := s.resolveInsertions(texteID, date)
		if err != nil {
			return err
		}
		inserted = entries
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := append(native, inserted...)
	sortConsolidatedEntries(entries)
	return entries, nil
}

// resolveArticle produces the entry for one native article: its active
// version at the date, overlaid by any active repeal. A repeal annotates
// rather than removes; an article with no covering version is reported as
// not yet in force, never as an error.
func (s *consolidationService) resolveArticle(article models.Article, date time.Time) (models.ConsolidatedEntry, error) {
	entry := models.ConsolidatedEntry{
		ArticleID:     article.ID,
		NumeroArticle: article.NumeroArticle,
		TitreCourt:    article.TitreCourt,
		State:         models.StateNotYetInForce,
	}

	versions, err := s.versionSvc.GetVersionsForArticle(article.ID)
	if err != nil {
		return entry, err
	}
	entry.VersionCount = len(versions)

	active, err := s.versionSvc.GetActiveVersionAtDate(article.ID, date)
	if err != nil {
		return entry, err
	}
	if active != nil {
		entry.State = models.StateInForce
		entry.Contenu = active.Contenu
		entry.EffectiveFrom = &active.EffectiveFrom
		entry.EffectiveTo = active.EffectiveTo
		entry.ModificationType = active.ModificationType
		entry.Notes = active.Notes
	}

	effects, err := s.effectSvc.GetEffectsTargetingArticle(article.ID)
	if err != nil {
		return entry, err
	}
	for _, effect := range effects {
		if effect.Kind != models.EffectAbroge || !IsActiveAt(effect, date) {
			continue
		}
		entry.State = models.StateRepealed
		entry.Annotation = annotationFor(effect)
		break
	}

	return entry, nil
}

// resolveInsertions synthesizes entries for articles inserted into the text
// by active AJOUTE effects. Insertions carry the source article's current
// content, not a version.
func (s *consolidationService) resolveInsertions(texteID uint, date time.Time) ([]models.ConsolidatedEntry, error) {
	effects, err := s.effectSvc.GetEffectsTargetingText(texteID)
	if err != nil {
		return nil, err
	}

	var entries []models.ConsolidatedEntry
	for _, effect := range effects {
		if effect.Kind != models.EffectAjoute || !IsActiveAt(effect, date) {
			continue
		}

		source := effect.SourceArticle
		if source == nil {
			log.Printf("data fault: effect %d references missing source article %d", effect.ID, effect.SourceArticleID)
			continue
		}

		entries = append(entries, models.ConsolidatedEntry{
			ArticleID:     source.ID,
			NumeroArticle: source.NumeroArticle,
			TitreCourt:    source.TitreCourt,
			Contenu:       source.Contenu,
			State:         models.StateInserted,
			Annotation:    annotationFor(effect),
		})
	}
	return entries, nil
}

func annotationFor(effect models.LegalEffect) *models.EntryAnnotation {
	annotation := &models.EntryAnnotation{
		EffectiveDate: effect.DateEffet,
		Citation:      effect.ReferenceCitation,
	}
	if source := effect.SourceArticle; source != nil {
		annotation.SourceArticleNumero = source.NumeroArticle
		if source.Texte != nil {
			annotation.SourceReference = source.Texte.OfficialReference
		}
	}
	return annotation
}
