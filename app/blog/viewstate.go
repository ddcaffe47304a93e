package blog

import "golang.org/x/text/language"

// ViewState is what one reader sees: the full lists as loaded and the
// derived list after the reader's filter and order choices.
//
// Publications is never reordered or filtered in place; every event
// derives FilteredPublications from it or reorders FilteredPublications.
type ViewState struct {
	Publications         []Publication
	FilteredPublications []Publication
	Authors              []Author

	sorter *Sorter
}

// NewViewState uses an English sorter when sorter is nil.
func NewViewState(sorter *Sorter) *ViewState {
	if sorter == nil {
		sorter = NewSorter(language.English)
	}

	return &ViewState{
		Publications:         []Publication{},
		FilteredPublications: []Publication{},
		Authors:              []Author{},
		sorter:               sorter,
	}
}

// LoadPublications replaces the full list and resets the working copy.
// It is independent of LoadAuthors; either may happen first.
func (v *ViewState) LoadPublications(publications []Publication) {
	v.Publications = publications
	v.FilteredPublications = FilterByAuthor(publications, nil)
}

func (v *ViewState) LoadAuthors(authors []Author) {
	v.Authors = authors
}

// OnAuthorFilterChanged re-derives the working list from the full list.
// Any previous order is dropped; survivors keep their load order.
func (v *ViewState) OnAuthorFilterChanged(authorID *int) {
	v.FilteredPublications = FilterByAuthor(v.Publications, authorID)
}

// OnOrderByChanged sorts the current working list in place.
func (v *ViewState) OnOrderByChanged(key string) {
	v.FilteredPublications = v.sorter.Sort(v.FilteredPublications, key)
}

// AuthorFor looks up the author of a publication. Publications may point
// at authors that do not exist, or authors may not be loaded yet.
func (v *ViewState) AuthorFor(authorID int) (Author, bool) {
	for _, author := range v.Authors {
		if author.AuthorID == authorID {
			return author, true
		}
	}
	return Author{}, false
}

// Latest derives the sidebar list from the full list.
func (v *ViewState) Latest(n int) []Publication {
	return LatestPublications(v.Publications, n)
}
