package blog

import (
	"sync"
	"time"
)

// Catalog holds the most recently loaded lists for the whole process.
// Publications and authors are written by independent loads and never
// depend on each other.
type Catalog struct {
	sorter *Sorter

	mu                   sync.RWMutex
	publications         []Publication
	authors              []Author
	publicationsLoadedAt *time.Time
	authorsLoadedAt      *time.Time
}

func NewCatalog(sorter *Sorter) *Catalog {
	return &Catalog{
		sorter:       sorter,
		publications: []Publication{},
		authors:      []Author{},
	}
}

func (c *Catalog) ReplacePublications(publications []Publication) {
	now := time.Now()
	publications = append(make([]Publication, 0, len(publications)), publications...)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.publications = publications
	c.publicationsLoadedAt = &now
}

func (c *Catalog) ReplaceAuthors(authors []Author) {
	now := time.Now()
	authors = append(make([]Author, 0, len(authors)), authors...)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.authors = authors
	c.authorsLoadedAt = &now
}

func (c *Catalog) Publications() []Publication {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(make([]Publication, 0, len(c.publications)), c.publications...)
}

func (c *Catalog) Authors() []Author {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(make([]Author, 0, len(c.authors)), c.authors...)
}

// LoadedAt returns when each list was last replaced; nil means never.
func (c *Catalog) LoadedAt() (publications, authors *time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.publicationsLoadedAt, c.authorsLoadedAt
}

// View returns a fresh ViewState seeded with copies of the current lists.
func (c *Catalog) View() *ViewState {
	view := NewViewState(c.sorter)
	view.LoadPublications(c.Publications())
	view.LoadAuthors(c.Authors())
	return view
}
