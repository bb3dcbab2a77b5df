package services

import (
	"sort"
	"time"

	"regulatory-consolidation/models"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

type fakeVersionRepo struct {
	versions []*models.ArticleVersion
	nextID   uint
}

func newFakeVersionRepo() *fakeVersionRepo {
	return &fakeVersionRepo{nextID: 1}
}

func (r *fakeVersionRepo) add(v models.ArticleVersion) *models.ArticleVersion {
	stored := v
	if stored.ID == 0 {
		stored.ID = r.nextID
	}
	if stored.ID >= r.nextID {
		r.nextID = stored.ID + 1
	}
	r.versions = append(r.versions, &stored)
	return &stored
}

func (r *fakeVersionRepo) GetByArticleID(articleID uint) ([]models.ArticleVersion, error) {
	var out []models.ArticleVersion
	for _, v := range r.versions {
		if v.ArticleID == articleID {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EffectiveFrom.After(out[j].EffectiveFrom)
	})
	return out, nil
}

func (r *fakeVersionRepo) GetByID(id uint) (*models.ArticleVersion, error) {
	for _, v := range r.versions {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVersionRepo) GetActiveAtDate(articleID uint, d time.Time) ([]models.ArticleVersion, error) {
	var out []models.ArticleVersion
	for _, v := range r.versions {
		if v.ArticleID == articleID && IntervalContains(v.EffectiveFrom, v.EffectiveTo, d) {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].VersionNumero > out[j].VersionNumero
	})
	return out, nil
}

func (r *fakeVersionRepo) Create(version *models.ArticleVersion) error {
	maxNumero := 0
	for _, v := range r.versions {
		if v.ArticleID == version.ArticleID && v.VersionNumero > maxNumero {
			maxNumero = v.VersionNumero
		}
	}
	version.VersionNumero = maxNumero + 1

	for _, v := range r.versions {
		if v.ArticleID == version.ArticleID &&
			IntervalsOverlap(v.EffectiveFrom, v.EffectiveTo, version.EffectiveFrom, version.EffectiveTo) {
			return models.ErrorValidation{Message: "validity interval overlaps an existing version"}
		}
	}

	version.ID = r.nextID
	r.nextID++
	stored := *version
	r.versions = append(r.versions, &stored)
	return nil
}

func (r *fakeVersionRepo) Update(version *models.ArticleVersion) error {
	for i, v := range r.versions {
		if v.ID == version.ID {
			copied := *version
			r.versions[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeVersionRepo) UpdateEffectiveTo(versionID uint, effectiveTo *time.Time) error {
	for _, v := range r.versions {
		if v.ID == versionID {
			v.EffectiveTo = effectiveTo
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeVersionRepo) DeleteWithRepair(version *models.ArticleVersion, predecessorID *uint, newEffectiveTo *time.Time) error {
	if predecessorID != nil {
		if err := r.UpdateEffectiveTo(*predecessorID, newEffectiveTo); err != nil {
			return err
		}
	}
	for i, v := range r.versions {
		if v.ID == version.ID {
			r.versions = append(r.versions[:i], r.versions[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeVersionRepo) GetAllGroupedByArticle() (map[uint][]models.ArticleVersion, error) {
	grouped := make(map[uint][]models.ArticleVersion)
	for _, v := range r.versions {
		grouped[v.ArticleID] = append(grouped[v.ArticleID], *v)
	}
	for id := range grouped {
		vs := grouped[id]
		sort.Slice(vs, func(i, j int) bool {
			return vs[i].EffectiveFrom.Before(vs[j].EffectiveFrom)
		})
		grouped[id] = vs
	}
	return grouped, nil
}

type fakeArticleRepo struct {
	articles map[uint]*models.Article
	nextID   uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[uint]*models.Article), nextID: 1}
}

func (r *fakeArticleRepo) add(a models.Article) *models.Article {
	stored := a
	if stored.ID == 0 {
		stored.ID = r.nextID
	}
	if stored.ID >= r.nextID {
		r.nextID = stored.ID + 1
	}
	r.articles[stored.ID] = &stored
	return &stored
}

func (r *fakeArticleRepo) Create(article *models.Article) error {
	article.ID = r.nextID
	r.nextID++
	stored := *article
	r.articles[stored.ID] = &stored
	return nil
}

func (r *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeArticleRepo) GetByTexteID(texteID uint) ([]models.Article, error) {
	var out []models.Article
	for _, a := range r.articles {
		if a.TexteID == texteID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeArticleRepo) GetAll() ([]models.Article, error) {
	var out []models.Article
	for _, a := range r.articles {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeArticleRepo) Update(article *models.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *article
	r.articles[copied.ID] = &copied
	return nil
}

type fakeTextRepo struct {
	textes map[uint]*models.RegulatoryText
	nextID uint
}

func newFakeTextRepo() *fakeTextRepo {
	return &fakeTextRepo{textes: make(map[uint]*models.RegulatoryText), nextID: 1}
}

func (r *fakeTextRepo) add(t models.RegulatoryText) *models.RegulatoryText {
	stored := t
	if stored.ID == 0 {
		stored.ID = r.nextID
	}
	if stored.ID >= r.nextID {
		r.nextID = stored.ID + 1
	}
	r.textes[stored.ID] = &stored
	return &stored
}

func (r *fakeTextRepo) Create(texte *models.RegulatoryText) error {
	texte.ID = r.nextID
	r.nextID++
	stored := *texte
	r.textes[stored.ID] = &stored
	return nil
}

func (r *fakeTextRepo) GetByID(id uint) (*models.RegulatoryText, error) {
	t, ok := r.textes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTextRepo) GetList(params models.TexteListParams) ([]models.RegulatoryText, int64, error) {
	var out []models.RegulatoryText
	for _, t := range r.textes {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeTextRepo) Update(texte *models.RegulatoryText) error {
	if _, ok := r.textes[texte.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *texte
	r.textes[copied.ID] = &copied
	return nil
}

type fakeEffectRepo struct {
	effects []*models.LegalEffect
	nextID  uint
}

func newFakeEffectRepo() *fakeEffectRepo {
	return &fakeEffectRepo{nextID: 1}
}

func (r *fakeEffectRepo) add(e models.LegalEffect) *models.LegalEffect {
	stored := e
	if stored.ID == 0 {
		stored.ID = r.nextID
	}
	if stored.ID >= r.nextID {
		r.nextID = stored.ID + 1
	}
	r.effects = append(r.effects, &stored)
	return &stored
}

func (r *fakeEffectRepo) Create(effect *models.LegalEffect) error {
	effect.ID = r.nextID
	r.nextID++
	stored := *effect
	r.effects = append(r.effects, &stored)
	return nil
}

func (r *fakeEffectRepo) GetByID(id uint) (*models.LegalEffect, error) {
	for _, e := range r.effects {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEffectRepo) Update(effect *models.LegalEffect) error {
	for i, e := range r.effects {
		if e.ID == effect.ID {
			copied := *effect
			r.effects[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeEffectRepo) GetByTargetArticleID(articleID uint) ([]models.LegalEffect, error) {
	var out []models.LegalEffect
	for _, e := range r.effects {
		if e.TargetArticleID != nil && *e.TargetArticleID == articleID {
			out = append(out, *e)
		}
	}
	sortEffectsByDateDesc(out)
	return out, nil
}

func (r *fakeEffectRepo) GetByTargetTexteID(texteID uint) ([]models.LegalEffect, error) {
	var out []models.LegalEffect
	for _, e := range r.effects {
		if e.TargetTexteID != nil && *e.TargetTexteID == texteID {
			out = append(out, *e)
		}
	}
	sortEffectsByDateDesc(out)
	return out, nil
}

func (r *fakeEffectRepo) GetBySourceArticleID(articleID uint) ([]models.LegalEffect, error) {
	var out []models.LegalEffect
	for _, e := range r.effects {
		if e.SourceArticleID == articleID {
			out = append(out, *e)
		}
	}
	sortEffectsByDateDesc(out)
	return out, nil
}

func (r *fakeEffectRepo) GetAll() ([]models.LegalEffect, error) {
	var out []models.LegalEffect
	for _, e := range r.effects {
		out = append(out, *e)
	}
	return out, nil
}

func sortEffectsByDateDesc(effects []models.LegalEffect) {
	sort.Slice(effects, func(i, j int) bool {
		return effects[i].DateEffet.After(effects[j].DateEffet)
	})
}

type fakeAuditRepo struct {
	audits  []models.AuditEntry
	reviews map[string]*models.FaultReview
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{reviews: make(map[string]*models.FaultReview)}
}

func (r *fakeAuditRepo) CreateAudit(entry *models.AuditEntry) error {
	r.audits = append(r.audits, *entry)
	return nil
}

func (r *fakeAuditRepo) CreateReview(review *models.FaultReview) error {
	copied := *review
	r.reviews[copied.Fingerprint] = &copied
	return nil
}

func (r *fakeAuditRepo) GetReviewByFingerprint(fingerprint string) (*models.FaultReview, error) {
	review, ok := r.reviews[fingerprint]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *review
	return &copied, nil
}

func (r *fakeAuditRepo) GetReviewedFingerprints() (map[string]bool, error) {
	reviewed := make(map[string]bool, len(r.reviews))
	for fp := range r.reviews {
		reviewed[fp] = true
	}
	return reviewed, nil
}
