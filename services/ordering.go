package services

import (
	"sort"

	"regulatory-consolidation/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newArticleCollator builds a French collator with numeric handling, so
// article numbers sort "1 bis" < "2" < "10" instead of lexicographically.
// Collators carry internal buffers and are not safe for concurrent use, so
// each sort gets its own.
func newArticleCollator() *collate.Collator {
	return collate.New(language.French, collate.Numeric, collate.Loose)
}

// sortConsolidatedEntries orders entries by article number; entries with the
// same number keep native articles ahead of inserted ones.
func sortConsolidatedEntries(entries []models.ConsolidatedEntry) {
	c := newArticleCollator()
	sort.SliceStable(entries, func(i, j int) bool {
		return c.CompareString(entries[i].NumeroArticle, entries[j].NumeroArticle) < 0
	})
}
