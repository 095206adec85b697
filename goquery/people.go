package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	miner "github.com/Raavan18/b2b-data-miner"
)

var _ miner.PersonExtractor = (*PeopleExtractor)(nil)

// namePattern matches explicit "Name Surname - Designation" mentions: two
// or more capitalized words, a dash or comma separator, then a short
// designation.
var namePattern = regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)+)\s*[-,–]\s*([A-Za-z ]{3,80})`)

// teamCardClass matches container class names commonly used for team
// member cards.
var teamCardClass = regexp.MustCompile(`(?i)team|member|card|profile`)

// PeopleExtractor finds named people with explicit designations on a page.
type PeopleExtractor struct{}

// NewPeopleExtractor creates a new PeopleExtractor.
func NewPeopleExtractor() *PeopleExtractor {
	return &PeopleExtractor{}
}

// ExtractPeople scans team-card containers for "name - designation"
// mentions, falling back to the whole page text when no card matches.
// Only explicit mentions are returned; nothing is inferred.
func (e *PeopleExtractor) ExtractPeople(html, sourceURL string) []miner.Person {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var people []miner.Person
	collect := func(text string) {
		for _, m := range namePattern.FindAllStringSubmatch(text, -1) {
			title := strings.TrimSpace(m[2])
			people = append(people, miner.Person{
				Name:      strings.TrimSpace(m[1]),
				Title:     title,
				Persona:   miner.ClassifyPersona(title),
				SourceURL: sourceURL,
			})
		}
	}

	cards := doc.Find("div, section").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		class, ok := sel.Attr("class")
		return ok && teamCardClass.MatchString(class)
	})

	if cards.Length() > 0 {
		cards.Each(func(_ int, sel *goquery.Selection) {
			collect(selectionText(sel))
		})
	} else {
		collect(pageText(doc))
	}

	return people
}
