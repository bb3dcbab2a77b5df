package services

import (
	"errors"
	"fmt"
	"html"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"regulatory-consolidation/models"
	"regulatory-consolidation/repositories"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gorm.io/gorm"
)

type DiffService interface {
	GetHistory(articleID uint) ([]models.VersionSummary, error)
	Diff(beforeID, afterID uint) (*models.DiffResult, error)
}

type diffService struct {
	versionRepo repositories.VersionRepository
	articleRepo repositories.ArticleRepository
	stripper    *bluemonday.Policy
}

func NewDiffService(versionRepo repositories.VersionRepository, articleRepo repositories.ArticleRepository) DiffService {
	return &diffService{
		versionRepo: versionRepo,
		articleRepo: articleRepo,
		stripper:    bluemonday.StrictPolicy(),
	}
}

// GetHistory returns the ordered version history of an article, each entry
// flagged with whether it is active relative to the current date.
func (s *diffService) GetHistory(articleID uint) ([]models.VersionSummary, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: fmt.Sprintf("article %d not found", articleID)}
		}
		return nil, err
	}

	versions, err := s.versionRepo.GetByArticleID(articleID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]models.VersionSummary, 0, len(versions))
	for _, v := range versions {
		summaries = append(summaries, models.VersionSummary{
			ID:               v.ID,
			VersionNumero:    v.VersionNumero,
			VersionLabel:     v.VersionLabel,
			DateVersion:      v.DateVersion,
			EffectiveFrom:    v.EffectiveFrom,
			EffectiveTo:      v.EffectiveTo,
			ModificationType: v.ModificationType,
			IsActiveNow:      IntervalContains(v.EffectiveFrom, v.EffectiveTo, now),
		})
	}
	return summaries, nil
}

// Diff compares two versions of the same article after reducing both sides
// to plain text. The caller picks which version is "before"; swapping the
// arguments swaps labels and the sign of the deltas, nothing else.
func (s *diffService) Diff(beforeID, afterID uint) (*models.DiffResult, error) {
	before, err := s.loadVersion(beforeID)
	if err != nil {
		return nil, err
	}
	after, err := s.loadVersion(afterID)
	if err != nil {
		return nil, err
	}
	if before.ArticleID != after.ArticleID {
		return nil, models.ErrorValidation{Message: "versions belong to different articles"}
	}

	beforeText := s.stripMarkup(before.Contenu)
	afterText := s.stripMarkup(after.Contenu)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(beforeText, afterText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	script := make([]models.DiffSpan, 0, len(diffs))
	for _, d := range diffs {
		span := models.DiffSpan{Text: d.Text}
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			span.Op = models.DiffInsert
		case diffmatchpatch.DiffDelete:
			span.Op = models.DiffDelete
		default:
			span.Op = models.DiffEqual
		}
		script = append(script, span)
	}

	beforeChars := utf8.RuneCountInString(beforeText)
	afterChars := utf8.RuneCountInString(afterText)
	beforeWords := len(strings.Fields(beforeText))
	afterWords := len(strings.Fields(afterText))

	charDelta := afterChars - beforeChars
	percentChange := 0
	if beforeChars > 0 {
		percentChange = int(math.Round(float64(charDelta) / float64(beforeChars) * 100))
	}

	return &models.DiffResult{
		Before: models.DiffSide{
			VersionID:     before.ID,
			VersionNumero: before.VersionNumero,
			VersionLabel:  before.VersionLabel,
			Chars:         beforeChars,
			Words:         beforeWords,
		},
		After: models.DiffSide{
			VersionID:     after.ID,
			VersionNumero: after.VersionNumero,
			VersionLabel:  after.VersionLabel,
			Chars:         afterChars,
			Words:         afterWords,
		},
		Script: script,
		Stats: models.DiffStats{
			CharDelta:     charDelta,
			WordDelta:     afterWords - beforeWords,
			PercentChange: percentChange,
		},
	}, nil
}

func (s *diffService) loadVersion(id uint) (*models.ArticleVersion, error) {
	version, err := s.versionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: fmt.Sprintf("version %d not found", id)}
		}
		return nil, err
	}
	return version, nil
}

// stripMarkup reduces stored rich-text content to comparable plain text.
func (s *diffService) stripMarkup(content string) string {
	stripped := s.stripper.Sanitize(content)
	return strings.TrimSpace(html.UnescapeString(stripped))
}
