package blog

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sorter reorders publication lists in place.
//
// Categories are compared with the Unicode Collation Algorithm for the
// sorter's locale at default (tertiary) strength: accents and case are
// significant, with base letters deciding first, so "apple" < "Apple" <
// "banana" < "Été" < "zebra" under "en". Plain ASCII words order
// alphabetically.
type Sorter struct {
	locale language.Tag
}

func NewSorter(locale language.Tag) *Sorter {
	return &Sorter{locale: locale}
}

// ParseLocale resolves a BCP 47 string, falling back to English.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}

// Sort orders publications by key and returns the same slice. The sort is
// stable, so equal dates or categories keep their input order. Unknown keys
// leave the slice as it is.
func (s *Sorter) Sort(publications []Publication, key string) []Publication {
	switch key {
	case OrderByDate:
		sortByDateDesc(publications)
	case OrderByCategory:
		// Collators are not safe for concurrent use.
		collator := collate.New(s.locale)
		slices.SortStableFunc(publications, func(a, b Publication) int {
			return collator.CompareString(a.Category, b.Category)
		})
	}

	return publications
}

func sortByDateDesc(publications []Publication) {
	dates := make(map[string]Date, len(publications))
	for _, publication := range publications {
		if _, ok := dates[publication.Date]; !ok {
			dates[publication.Date] = ParseDate(publication.Date)
		}
	}

	slices.SortStableFunc(publications, func(a, b Publication) int {
		return dates[b.Date].Compare(dates[a.Date])
	})
}
