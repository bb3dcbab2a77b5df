package services

import (
	"context"
	"testing"
	"time"

	"regulatory-consolidation/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type consolidationFixture struct {
	svc         ConsolidationService
	texteRepo   *fakeTextRepo
	articleRepo *fakeArticleRepo
	versionRepo *fakeVersionRepo
	effectRepo  *fakeEffectRepo
}

func newConsolidationFixture() *consolidationFixture {
	texteRepo := newFakeTextRepo()
	articleRepo := newFakeArticleRepo()
	versionRepo := newFakeVersionRepo()
	effectRepo := newFakeEffectRepo()

	versionSvc := NewVersionService(versionRepo, articleRepo)
	effectSvc := NewEffectService(effectRepo, articleRepo, texteRepo)

	return &consolidationFixture{
		svc:         NewConsolidationService(texteRepo, articleRepo, versionSvc, effectSvc),
		texteRepo:   texteRepo,
		articleRepo: articleRepo,
		versionRepo: versionRepo,
		effectRepo:  effectRepo,
	}
}

func entryByNumero(t *testing.T, entries []models.ConsolidatedEntry, numero string) models.ConsolidatedEntry {
	t.Helper()
	for _, e := range entries {
		if e.NumeroArticle == numero {
			return e
		}
	}
	t.Fatalf("no entry for article %q", numero)
	return models.ConsolidatedEntry{}
}

func TestResolveConsolidatedTextVersionSelection(t *testing.T) {
	f := newConsolidationFixture()
	texte := f.texteRepo.add(models.RegulatoryText{OfficialReference: "decret-2019-44"})
	article := f.articleRepo.add(models.Article{TexteID: texte.ID, NumeroArticle: "5"})

	f.versionRepo.add(models.ArticleVersion{
		ArticleID:     article.ID,
		VersionNumero: 1,
		Contenu:       "original wording",
		EffectiveFrom: date(2020, time.January, 1),
		EffectiveTo:   datePtr(2022, time.June, 1),
	})
	f.versionRepo.add(models.ArticleVersion{
		ArticleID:        article.ID,
		VersionNumero:    2,
		Contenu:          "amended wording",
		EffectiveFrom:    date(2022, time.June, 1),
		ModificationType: models.ModificationModifie,
	})

	entries, err := f.svc.ResolveConsolidatedText(context.Background(), texte.ID, date(2021, time.January, 1))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.StateInForce, entries[0].State)
	assert.Equal(t, "original wording", entries[0].Contenu)
	assert.Equal(t, 2, entries[0].VersionCount)

	entries, err = f.svc.ResolveConsolidatedText(context.Background(), texte.ID, date(2023, time.January, 1))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "amended wording", entries[0].Contenu)
	assert.Equal(t, models.ModificationModifie, entries[0].ModificationType)
}

func TestResolveConsolidatedTextNotYetInForce(t *testing.T) {
	f := newConsolidationFixture()
	texte := f.texteRepo.add(models.RegulatoryText{OfficialReference: "decret-2019-44"})
	article := f.articleRepo.add(models.Article{TexteID: texte.ID, NumeroArticle: "5"})

	f.versionRepo.add(models.ArticleVersion{
		ArticleID:     article.ID,
		VersionNumero: 1,
		Contenu:       "future wording",
		EffectiveFrom: date(2025, time.January, 1),
	})

	entries, err := f.svc.ResolveConsolidatedText(context.Background(), texte.ID, date(2020, time.January, 1))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.StateNotYetInForce, entries[0].State)
	assert.Empty(t, entries[0].Contenu)
	assert.Equal(t, 1, entries[0].VersionCount)
}

func TestResolveConsolidatedTextRepealOverlay(t *testing.T) {
	f := newConsolidationFixture()
	target := f.texteRepo.add(models.RegulatoryText{OfficialReference: "decret-2019-44"})
	amending := f.texteRepo.add(models.RegulatoryText{OfficialReference: "loi-2021-09"})

	article := f.articleRepo.add(models.Article{TexteID: target.ID, NumeroArticle: "5"})
	source := f.articleRepo.add(models.Article{TexteID: amending.ID, NumeroArticle: "3", Texte: amending})

	f.versionRepo.add(models.ArticleVersion{
		ArticleID:     article.ID,
		VersionNumero: 1,
		Contenu:       "original wording",
		EffectiveFrom: date(2020, time.January, 1),
	})

	f.effectRepo.add(models.LegalEffect{
		Kind:              models.EffectAbroge,
		SourceArticleID:   source.ID,
		SourceArticle:     source,
		TargetArticleID:   &article.ID,
		DateEffet:         date(2021, time.March, 1),
		DateFinEffet:      datePtr(2022, time.March, 1),
		ReferenceCitation: "art. 3, loi-2021-09",
	})

	// inside the repeal window the overlay wins over the active version
	entries, err := f.svc.ResolveConsolidatedText(context.Background(), target.ID, date(2021, time.June, 1))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.StateRepealed, entries[0].State)
	assert.Equal(t, "original wording", entries[0].Contenu)
	require.NotNil(t, entries[0].Annotation)
	assert.Equal(t, "loi-2021-09", entries[0].Annotation.SourceReference)
	assert.Equal(t, "3", entries[0].Annotation.SourceArticleNumero)
	assert.Equal(t, date(2021, time.March, 1), entries[0].Annotation.EffectiveDate)
	assert.Equal(t, "art. 3, loi-2021-09", entries[0].Annotation.Citation)

	// before the window
	entries, err = f.svc.ResolveConsolidatedText(context.Background(), target.ID, date(2021, time.February, 1))
	require.NoError(t, err)
	assert.Equal(t, models.StateInForce, entries[0].State)

	// the window end is exclusive, so the article is back in force that day
	entries, err = f.svc.ResolveConsolidatedText(context.Background(), target.ID, date(2022, time.March, 1))
	require.NoError(t, err)
	assert.Equal(t, models.StateInForce, entries[0].State)
	assert.Nil(t, entries[0].Annotation)
}

func TestResolveConsolidatedTextInsertions(t *testing.T) {
	f := newConsolidationFixture()
	target := f.texteRepo.add(models.RegulatoryText{OfficialReference: "decret-2019-44"})
	amending := f.texteRepo.add(models.RegulatoryText{OfficialReference: "loi-2021-09"})

	f.articleRepo.add(models.Article{TexteID: target.ID, NumeroArticle: "5", Contenu: "native"})
	source := f.articleRepo.add(models.Article{
		TexteID:       amending.ID,
		NumeroArticle: "5 bis",
		TitreCourt:    "Obligations complémentaires",
		Contenu:       "inserted wording",
		Texte:         amending,
	})

	f.effectRepo.add(models.LegalEffect{
		Kind:            models.EffectAjoute,
		SourceArticleID: source.ID,
		SourceArticle:   source,
		TargetTexteID:   &target.ID,
		DateEffet:       date(2021, time.March, 1),
	})

	entries, err := f.svc.ResolveConsolidatedText(context.Background(), target.ID, date(2021, time.June, 1))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	inserted := entryByNumero(t, entries, "5 bis")
	assert.Equal(t, models.StateInserted, inserted.State)
	assert.Equal(t, "inserted wording", inserted.Contenu)
	assert.Equal(t, "Obligations complémentaires", inserted.TitreCourt)
	require.NotNil(t, inserted.Annotation)
	assert.Equal(t, "loi-2021-09", inserted.Annotation.SourceReference)

	// before the effect the insertion is absent
	entries, err = f.svc.ResolveConsolidatedText(context.Background(), target.ID, date(2021, time.February, 1))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestResolveConsolidatedTextOrderAndDeterminism(t *testing.T) {
	f := newConsolidationFixture()
	target := f.texteRepo.add(models.RegulatoryText{OfficialReference: "decret-2019-44"})
	amending := f.texteRepo.add(models.RegulatoryText{OfficialReference: "loi-2021-09"})

	for _, numero := range []string{"10", "2", "1"} {
		article := f.articleRepo.add(models.Article{TexteID: target.ID, NumeroArticle: numero})
		f.versionRepo.add(models.ArticleVersion{
			ArticleID:     article.ID,
			VersionNumero: 1,
			Contenu:       "wording " + numero,
			EffectiveFrom: date(2020, time.January, 1),
		})
	}

	source := f.articleRepo.add(models.Article{
		TexteID:       amending.ID,
		NumeroArticle: "1 bis",
		Contenu:       "inserted wording",
		Texte:         amending,
	})
	f.effectRepo.add(models.LegalEffect{
		Kind:            models.EffectAjoute,
		SourceArticleID: source.ID,
		SourceArticle:   source,
		TargetTexteID:   &target.ID,
		DateEffet:       date(2020, time.June, 1),
	})

	first, err := f.svc.ResolveConsolidatedText(context.Background(), target.ID, date(2021, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1 bis", "2", "10"}, numeros(first))

	// repeated resolution is deterministic regardless of goroutine timing
	for i := 0; i < 5; i++ {
		again, err := f.svc.ResolveConsolidatedText(context.Background(), target.ID, date(2021, time.January, 1))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResolveConsolidatedTextUnknownText(t *testing.T) {
	f := newConsolidationFixture()

	_, err := f.svc.ResolveConsolidatedText(context.Background(), 99, date(2021, time.January, 1))
	assert.IsType(t, models.ErrorNotFound{}, err)
}

func TestResolveConsolidatedTextCancelledContext(t *testing.T) {
	f := newConsolidationFixture()
	texte := f.texteRepo.add(models.RegulatoryText{OfficialReference: "decret-2019-44"})
	f.articleRepo.add(models.Article{TexteID: texte.ID, NumeroArticle: "1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.ResolveConsolidatedText(ctx, texte.ID, date(2021, time.January, 1))
	assert.ErrorIs(t, err, context.Canceled)
}
