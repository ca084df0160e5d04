package classifier

import (
	"net/url"
	"strings"
)

const (
	UnknownDomain = "unknown"
	CategoryOther = "Other"
	DefaultFill   = "black"
	DefaultBack   = "white"
	wwwPrefix     = "www."
)

type Classification struct {
	Domain    string
	Category  string
	FillColor string
	BackColor string
}

type rule struct {
	category string
	fill     string
	needles  []string
}

// rules are evaluated in order against the normalized domain; first match wins.
var rules = []rule{
	{category: "YouTube", fill: "#FF0000", needles: []string{"youtube.com", "youtu.be"}},
	{category: "Instagram", fill: "#C13584", needles: []string{"instagram.com"}},
	{category: "Facebook", fill: "#1877F2", needles: []string{"facebook.com"}},
	{category: "Twitter/X", fill: "#1DA1F2", needles: []string{"twitter.com", "x.com"}},
	{category: "LinkedIn", fill: "#0A66C2", needles: []string{"linkedin.com"}},
	{category: "GitHub", fill: "#181717", needles: []string{"github.com"}},
}

// Default is the classification used when nothing better is known.
func Default() Classification {
	return Classification{
		Domain:    UnknownDomain,
		Category:  CategoryOther,
		FillColor: DefaultFill,
		BackColor: DefaultBack,
	}
}

// Classify maps a URL to its normalized domain, category and colors. It never fails:
// an unparseable URL keeps the "unknown" domain and falls through to the rules.
func Classify(rawURL string) Classification {
	c := Default()

	if domain, ok := NormalizeDomain(rawURL); ok {
		c.Domain = domain
	}

	for _, r := range rules {
		if r.matches(c.Domain) {
			c.Category = r.category
			c.FillColor = r.fill
			break
		}
	}

	return c
}

// NormalizeDomain returns the lowercased host of rawURL without a leading "www.".
// Userinfo is dropped and the port kept. The host may be empty for scheme-less input
// such as "example.com".
func NormalizeDomain(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	domain := strings.ToLower(parsed.Host)
	return strings.TrimPrefix(domain, wwwPrefix), true
}

func (r rule) matches(domain string) bool {
	for _, needle := range r.needles {
		if strings.Contains(domain, needle) {
			return true
		}
	}
	return false
}
