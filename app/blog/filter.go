package blog

// FilterByAuthor returns a new slice holding the publications written by
// authorID, in their original order. A nil authorID copies the whole list.
// The input is never modified and the result never aliases it.
func FilterByAuthor(publications []Publication, authorID *int) []Publication {
	if authorID == nil {
		return append(make([]Publication, 0, len(publications)), publications...)
	}

	filtered := make([]Publication, 0, len(publications))
	for _, publication := range publications {
		if publication.AuthorID == *authorID {
			filtered = append(filtered, publication)
		}
	}

	return filtered
}
