package api

import (
	"github.com/lysyi3m/pubfront/app/blog"
	"github.com/lysyi3m/pubfront/app/database"
	"github.com/lysyi3m/pubfront/app/feed"
	"github.com/lysyi3m/pubfront/app/site"
)

type GeneratorInterface interface {
	Run(siteConfig *site.Config, publications []blog.Publication, authors []blog.Author) (string, error)
}

var _ GeneratorInterface = (*feed.Generator)(nil)

type Handler struct {
	catalog     *blog.Catalog
	siteConfig  *site.Config
	generator   GeneratorInterface
	runRepo     database.LoadRunRepository
	sidebarSize int
}

// publicationCard is one entry of the publication list with its author
// resolved; Author is nil when the author is unknown or not loaded yet.
type publicationCard struct {
	blog.Publication
	Author *blog.Author
}

type pageData struct {
	Site           *site.Config
	Authors        []blog.Author
	SelectedAuthor *int
	SelectedOrder  string
	Publications   []publicationCard
	Latest         []blog.Publication
	SidebarTitle   string
	UpdatedAgo     string
	Year           int
}
