// Package venue classifies free-text venue names into jurisdictions.
//
// Matching is lower-cased substring containment against two static lists.
// Diacritics are not stripped and partial matches inside unrelated names are
// accepted. An event's explicit country takes precedence.
package venue

import (
	"strings"

	"github.com/ridaofranco/eventdesk/internal/models"
)

// Class is the jurisdiction category of a venue.
type Class string

const (
	Domestic      Class = "domestic"
	International Class = "international"
	Unclassified  Class = "unclassified"
)

// UnknownCountry labels an international match with no country mapping.
const UnknownCountry = "Internacional (país no mapeado)"

// HomeCountry is the country domestic venues belong to.
const HomeCountry = "Argentina"

// City maps an international city fragment to a country label.
type City struct {
	Name    string
	Country string
}

// Result is the outcome of a classification.
type Result struct {
	Class   Class  `json:"class"`
	Country string `json:"country,omitempty"`
}

// NeedsAutomation reports whether venue-triggered tasks apply.
func (r Result) NeedsAutomation() bool {
	return r.Class == Domestic || r.Class == International
}

// Classifier holds the lookup tables. The zero value classifies everything
// as unclassified.
type Classifier struct {
	home          string
	international []City
	domestic      []string
}

// New builds a classifier from explicit tables. International entries are
// checked in order, so list longer fragments before shorter ones.
func New(home string, international []City, domestic []string) *Classifier {
	if home == "" {
		home = HomeCountry
	}
	return &Classifier{home: home, international: international, domestic: domestic}
}

// Default returns a classifier with the shipped city tables.
func Default() *Classifier {
	return New(HomeCountry, internationalCities, domesticCities)
}

// ForHome returns the shipped tables with a different home country label.
func ForHome(home string) *Classifier {
	return New(home, internationalCities, domesticCities)
}

// Home returns the label used for domestic results.
func (c *Classifier) Home() string {
	return c.home
}

// Classify resolves a venue string.
func (c *Classifier) Classify(venue string) Result {
	v := strings.ToLower(strings.TrimSpace(venue))
	if v == "" {
		return Result{Class: Unclassified}
	}

	for _, city := range c.international {
		if city.Name == "" || !strings.Contains(v, strings.ToLower(city.Name)) {
			continue
		}
		country := city.Country
		if country == "" {
			country = UnknownCountry
		}
		return Result{Class: International, Country: country}
	}

	for _, name := range c.domestic {
		if name != "" && strings.Contains(v, strings.ToLower(name)) {
			return Result{Class: Domestic, Country: c.home}
		}
	}

	return Result{Class: Unclassified}
}

// ClassifyEvent prefers the event's explicit country and falls back to the
// venue string for legacy records.
func (c *Classifier) ClassifyEvent(e models.Event) Result {
	country := strings.TrimSpace(e.Country)
	if country == "" {
		return c.Classify(e.Venue)
	}
	if strings.EqualFold(country, c.home) {
		return Result{Class: Domestic, Country: c.home}
	}
	return Result{Class: International, Country: country}
}
