package site

// Config is the page chrome read from site.yml. Publication data never
// comes from here.
type Config struct {
	Title        string        `yaml:"title"`
	Tagline      string        `yaml:"tagline"`
	Description  string        `yaml:"description"`
	Footer       Footer        `yaml:"footer"`
	OrderOptions []OrderOption `yaml:"order_options"`
	Sidebar      Sidebar       `yaml:"sidebar"`
}

type Footer struct {
	Text  string `yaml:"text"`
	Links []Link `yaml:"links"`
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// OrderOption is one entry of the header's order selector. Value is passed
// to the sorter as is.
type OrderOption struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Sidebar struct {
	Title string `yaml:"title"`
	Size  int    `yaml:"size"` // 0 uses the server default
}
