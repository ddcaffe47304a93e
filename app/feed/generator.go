package feed

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lysyi3m/pubfront/app/blog"
	"github.com/lysyi3m/pubfront/app/cfg"
	"github.com/lysyi3m/pubfront/app/site"
)

// Generator renders the latest publications as an RSS 2.0 channel.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run writes publications in the given order; callers pass the sidebar
// list so the feed matches "latest news".
func (g *Generator) Run(siteConfig *site.Config, publications []blog.Publication, authors []blog.Author) (string, error) {
	var buf bytes.Buffer

	baseURL := g.baseURL()

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom" xmlns:dc="http://purl.org/dc/elements/1.1/">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", siteConfig.Title, 4)
	g.writeElement(&buf, "link", baseURL+"/", 4)
	channelDescription := siteConfig.Description
	if channelDescription == "" {
		channelDescription = siteConfig.Tagline
	}
	if channelDescription == "" {
		channelDescription = siteConfig.Title
	}
	g.writeElement(&buf, "description", channelDescription, 4)

	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(baseURL+"/feed.xml")))

	lastBuildDate := time.Now().In(time.Local)
	if len(publications) > 0 {
		if date := blog.ParseDate(publications[0].Date); date.Valid {
			lastBuildDate = date.Time
		}
	}

	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("PubFront/%s", cfg.Get().Version), 4)

	names := make(map[int]string, len(authors))
	for _, author := range authors {
		names[author.AuthorID] = author.Name
	}

	for _, publication := range publications {
		g.writeItem(&buf, baseURL, publication, names[publication.AuthorID])
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, baseURL string, publication blog.Publication, authorName string) {
	buf.WriteString("    <item>\n")

	buf.WriteString("      <guid isPermaLink=\"false\">")
	xml.EscapeText(buf, []byte(g.guid(publication)))
	buf.WriteString("</guid>\n")

	g.writeElement(buf, "title", publication.Title, 6)

	query := url.Values{"author": {strconv.Itoa(publication.AuthorID)}}
	g.writeElement(buf, "link", baseURL+"/?"+query.Encode(), 6)

	description := publication.Description
	if description == "" {
		description = "No description available"
	}
	g.writeElement(buf, "description", description, 6)

	// Unparseable dates are left out rather than rendered as a bogus time.
	if date := blog.ParseDate(publication.Date); date.Valid {
		g.writeElement(buf, "pubDate", date.Time.Format(time.RFC1123Z), 6)
	}

	g.writeElement(buf, "dc:creator", authorName, 6)
	g.writeElement(buf, "category", publication.Category, 6)

	buf.WriteString("    </item>\n")
}

// guid is stable for identical publications; the upstream has no ids.
func (g *Generator) guid(publication blog.Publication) string {
	content := strings.Join([]string{
		strconv.Itoa(publication.AuthorID),
		publication.Date,
		publication.Title,
		publication.Category,
	}, "|")

	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

func (g *Generator) baseURL() string {
	if cfg.Get().BaseUrl != "" {
		return strings.TrimRight(cfg.Get().BaseUrl, "/")
	}
	return fmt.Sprintf("http://localhost:%s", cfg.Get().Port)
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
