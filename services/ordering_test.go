package services

import (
	"testing"

	"regulatory-consolidation/models"

	"github.com/stretchr/testify/assert"
)

func numeros(entries []models.ConsolidatedEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.NumeroArticle)
	}
	return out
}

func TestSortConsolidatedEntriesNumeric(t *testing.T) {
	entries := []models.ConsolidatedEntry{
		{NumeroArticle: "10"},
		{NumeroArticle: "2"},
		{NumeroArticle: "1"},
		{NumeroArticle: "21"},
		{NumeroArticle: "3"},
	}

	sortConsolidatedEntries(entries)

	assert.Equal(t, []string{"1", "2", "3", "10", "21"}, numeros(entries))
}

func TestSortConsolidatedEntriesSuffixes(t *testing.T) {
	entries := []models.ConsolidatedEntry{
		{NumeroArticle: "13"},
		{NumeroArticle: "12 ter"},
		{NumeroArticle: "2"},
		{NumeroArticle: "12"},
		{NumeroArticle: "12 bis"},
		{NumeroArticle: "1 bis"},
		{NumeroArticle: "1"},
	}

	sortConsolidatedEntries(entries)

	assert.Equal(t, []string{"1", "1 bis", "2", "12", "12 bis", "12 ter", "13"}, numeros(entries))
}

func TestSortConsolidatedEntriesStable(t *testing.T) {
	entries := []models.ConsolidatedEntry{
		{NumeroArticle: "5", State: models.StateInForce},
		{NumeroArticle: "5", State: models.StateInserted},
	}

	sortConsolidatedEntries(entries)

	assert.Equal(t, models.StateInForce, entries[0].State)
	assert.Equal(t, models.StateInserted, entries[1].State)
}
