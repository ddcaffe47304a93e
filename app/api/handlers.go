package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/pubfront/app/blog"
	"github.com/lysyi3m/pubfront/app/database"
	"github.com/lysyi3m/pubfront/app/feed"
	"github.com/lysyi3m/pubfront/app/site"
)

func NewHandler(catalog *blog.Catalog, siteConfig *site.Config, runRepo database.LoadRunRepository, sidebarSize int) *Handler {
	if siteConfig.Sidebar.Size > 0 {
		sidebarSize = siteConfig.Sidebar.Size
	}
	if sidebarSize == 0 {
		sidebarSize = blog.DefaultSidebarSize
	}

	return &Handler{
		catalog:     catalog,
		siteConfig:  siteConfig,
		generator:   feed.NewGenerator(),
		runRepo:     runRepo,
		sidebarSize: sidebarSize,
	}
}

// parseAuthorFilter maps the author selector value: empty means no filter.
func parseAuthorFilter(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	authorID, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &authorID, nil
}

// view builds a reader's view and replays the header events: author
// filter first, then order.
func (h *Handler) view(c *gin.Context) (*blog.ViewState, *int, bool) {
	authorID, err := parseAuthorFilter(c.Query("author"))
	if err != nil {
		slog.Debug("Invalid author filter", "author", c.Query("author"), "error", err)
		return nil, nil, false
	}

	view := h.catalog.View()
	view.OnAuthorFilterChanged(authorID)
	view.OnOrderByChanged(c.Query("order"))

	return view, authorID, true
}

func (h *Handler) GetIndex(c *gin.Context) {
	view, authorID, ok := h.view(c)
	if !ok {
		c.String(http.StatusBadRequest, "Invalid author filter")
		return
	}

	cards := make([]publicationCard, 0, len(view.FilteredPublications))
	for _, publication := range view.FilteredPublications {
		card := publicationCard{Publication: publication}
		if author, found := view.AuthorFor(publication.AuthorID); found {
			card.Author = &author
		}
		cards = append(cards, card)
	}

	data := pageData{
		Site:           h.siteConfig,
		Authors:        view.Authors,
		SelectedAuthor: authorID,
		SelectedOrder:  c.Query("order"),
		Publications:   cards,
		Latest:         view.Latest(h.sidebarSize),
		SidebarTitle:   h.siteConfig.Sidebar.Title,
		Year:           time.Now().Year(),
	}

	if publicationsAt, _ := h.catalog.LoadedAt(); publicationsAt != nil {
		data.UpdatedAgo = humanize.Time(*publicationsAt)
	}

	c.HTML(http.StatusOK, "index.tmpl", data)
}

func (h *Handler) APIListPublications(c *gin.Context) {
	view, _, ok := h.view(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author filter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publications": view.FilteredPublications,
		"total":        len(view.FilteredPublications),
	})
}

func (h *Handler) APIListAuthors(c *gin.Context) {
	authors := h.catalog.Authors()

	c.JSON(http.StatusOK, gin.H{
		"authors": authors,
		"total":   len(authors),
	})
}

func (h *Handler) APIGetAuthor(c *gin.Context) {
	authorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid author ID"})
		return
	}

	view := h.catalog.View()
	author, found := view.AuthorFor(authorID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}

	view.OnAuthorFilterChanged(&authorID)

	c.JSON(http.StatusOK, gin.H{
		"author":       author,
		"publications": view.FilteredPublications,
	})
}

func (h *Handler) APILatest(c *gin.Context) {
	n := h.sidebarSize
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
			return
		}
		n = parsed
	}

	latest := blog.LatestPublications(h.catalog.Publications(), n)

	c.JSON(http.StatusOK, gin.H{
		"publications": latest,
		"total":        len(latest),
	})
}

func (h *Handler) GetFeed(c *gin.Context) {
	view := h.catalog.View()

	rss, err := h.generator.Run(h.siteConfig, view.Latest(h.sidebarSize), view.Authors)
	if err != nil {
		slog.Error("RSS generation error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, rss)
}

func (h *Handler) GetHealth(c *gin.Context) {
	publicationsAt, authorsAt := h.catalog.LoadedAt()

	health := map[string]interface{}{
		"timestamp":    time.Now().In(time.Local).Format(time.RFC3339),
		"publications": len(h.catalog.Publications()),
		"authors":      len(h.catalog.Authors()),
	}

	if publicationsAt != nil {
		health["publications_loaded_at"] = publicationsAt.Format(time.RFC3339)
	}
	if authorsAt != nil {
		health["authors_loaded_at"] = authorsAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.runRepo.GetRunStats()
	if err != nil {
		slog.Error("Database error", "operation", "get_run_stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	resources := make([]map[string]interface{}, 0, len(stats))
	for _, s := range stats {
		resource := map[string]interface{}{
			"resource":  s.Resource,
			"total":     s.Total,
			"succeeded": s.Succeeded,
			"failed":    s.Failed,
		}
		if s.LastSuccessAt != nil {
			resource["last_success_at"] = s.LastSuccessAt.Format(time.RFC3339)
		}

		if latest, err := h.runRepo.GetLatestRun(s.Resource); err == nil && latest != nil {
			resource["latest"] = map[string]interface{}{
				"id":          latest.ID,
				"status":      latest.Status,
				"item_count":  latest.ItemCount,
				"finished_at": latest.FinishedAt.Format(time.RFC3339),
				"duration":    latest.FinishedAt.Sub(latest.StartedAt).String(),
				"error":       latest.Error,
			}
		}

		resources = append(resources, resource)
	}

	c.JSON(http.StatusOK, gin.H{
		"loads": resources,
	})
}
