package blog

// Publication is a single blog entry as served by the upstream API.
// There is no identity field; two entries with equal fields are
// indistinguishable.
type Publication struct {
	AuthorID    int    `json:"authorId"`
	Date        string `json:"date"` // DD/MM/YYYY
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type Author struct {
	AuthorID    int    `json:"authorId"`
	Name        string `json:"name"`
	XComURL     string `json:"xComUrl"`
	LinkedinURL string `json:"linkedinUrl"`
	WebsiteURL  string `json:"websiteUrl"`
}

// Order keys understood by Sorter. Any other key leaves the list untouched.
const (
	OrderByDate     = "date"
	OrderByCategory = "category"
)

const DefaultSidebarSize = 5
