package blog

// LatestPublications returns the n most recent publications, newest first,
// as a new slice. Fewer than n inputs are all returned. n <= 0 falls back
// to DefaultSidebarSize.
func LatestPublications(publications []Publication, n int) []Publication {
	if n <= 0 {
		n = DefaultSidebarSize
	}

	latest := append(make([]Publication, 0, len(publications)), publications...)
	sortByDateDesc(latest)

	if len(latest) > n {
		latest = latest[:n]
	}
	return latest
}
