package models

// Content is the static marketing copy rendered on the site pages.
// It is loaded once at startup and never mutated.
type Content struct {
	Business     Business      `yaml:"business"`
	NavLinks     []Link        `yaml:"nav_links"`
	HeroStats    []Stat        `yaml:"hero_stats"`
	PainPoints   []Feature     `yaml:"pain_points"`
	Services     []Service     `yaml:"services"`
	Process      []Step        `yaml:"process"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Credentials  []string      `yaml:"credentials"`
	ServiceAreas []string      `yaml:"service_areas"`
	FooterAreas  []string      `yaml:"footer_areas"`
	QuickLinks   []Link        `yaml:"quick_links"`
	CompanyLinks []Link        `yaml:"company_links"`
	FAQ          []FAQEntry    `yaml:"faq"`
	Landing      Landing       `yaml:"landing"`
}

// Business holds contact details shown in the header, footer and contact section.
type Business struct {
	Name        string `yaml:"name"`
	Phone       string `yaml:"phone"`
	PhoneDigits string `yaml:"phone_digits"` // dialled by tel: links
	Email       string `yaml:"email"`
	Region      string `yaml:"region"`
	Hours       string `yaml:"hours"`
}

type Link struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Service struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

type Step struct {
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Testimonial struct {
	Name     string `yaml:"name"`
	Location string `yaml:"location"`
	Text     string `yaml:"text"`
	Rating   int    `yaml:"rating"`
	Service  string `yaml:"service"`
}

// Stars returns a slice sized to the rating, for ranging in templates.
func (t Testimonial) Stars() []struct{} {
	return make([]struct{}, t.Rating)
}

type FAQEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Landing is the trimmed-down ad landing page copy.
type Landing struct {
	Services []Service     `yaml:"services"`
	Reviews  []Testimonial `yaml:"reviews"`
}
