package cfg

type Cfg struct {
	// Upstream API
	PublicationsURL string
	AuthorsURL      string
	UserAgent       string
	FetchTimeout    int     // seconds
	RateLimit       float64 // requests per second, 0 disables

	// Application configuration
	Port            string
	BaseUrl         string
	SiteFile        string
	DBPath          string
	WorkerCount     int
	RefreshInterval int // seconds, 0 loads once at startup
	SidebarSize     int
	Locale          string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
