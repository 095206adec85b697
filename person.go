package miner

import (
	"sort"
	"strings"
)

// PersonaFinancialInfluencer extends the role taxonomy for people whose
// designation signals reach rather than a licensed role.
const PersonaFinancialInfluencer = "Financial Influencer"

// Person is a named individual with an explicit designation found on a
// page. People are only extracted when name and title appear together;
// a designation is never guessed from a bare name.
type Person struct {
	Name             string `json:"full_name"`
	Title            string `json:"designation"`
	Persona          string `json:"persona"`
	Confidence       int    `json:"confidence"`
	ConfidenceReason string `json:"confidence_reason,omitempty"`
	SourceURL        string `json:"source_url,omitempty"`
}

// personaCategories map designation phrases to personas, checked in
// order with first match winning.
var personaCategories = []roleCategory{
	{RolePMS, []string{"portfolio manager", "fund manager", "investment manager"}},
	{RoleInsuranceAgent, []string{"insurance advisor", "insurance agent", "insurance consultant"}},
	{RoleIFA, []string{"independent financial advisor", "financial advisor", "wealth advisor"}},
	{RoleMutualFund, []string{"mutual fund manager", "asset management", "amc", "fund house"}},
	{PersonaFinancialInfluencer, []string{"founder", "content creator", "youtuber", "finfluencer"}},
}

// personaPriorities rank personas for ordering and confidence. Personas
// not listed rank at 0.
var personaPriorities = map[string]int{
	RolePMS:                    5,
	RoleMutualFund:             4,
	RoleInsuranceAgent:         3,
	RoleIFA:                    3,
	PersonaFinancialInfluencer: 2,
}

// ClassifyPersona maps a designation to a persona label, or "" when no
// phrase matches.
func ClassifyPersona(title string) string {
	lower := strings.ToLower(title)
	for _, cat := range personaCategories {
		for _, phrase := range cat.phrases {
			if strings.Contains(lower, phrase) {
				return cat.role
			}
		}
	}
	return ""
}

// RankPeople classifies, deduplicates and orders extracted people.
//
// Each person's persona is derived from the designation and a confidence
// assigned: 80 for high-priority personas, 60 for any other persona, 30
// with no persona match. Duplicate names (case-insensitive) collapse to
// the occurrence with the highest persona priority. The result is sorted
// by priority descending; ties keep input order.
func RankPeople(people []Person) []*Person {
	byName := make(map[string]int)
	var ranked []*Person

	for i := range people {
		p := people[i]
		p.Persona = ClassifyPersona(p.Title)
		priority := personaPriorities[p.Persona]

		if p.Persona != "" {
			if priority >= 4 {
				p.Confidence = 80
			} else {
				p.Confidence = 60
			}
			p.ConfidenceReason = "Persona matched: " + p.Persona
		} else {
			p.Confidence = 30
			p.ConfidenceReason = "No persona match found"
		}

		key := strings.ToLower(strings.TrimSpace(p.Name))
		if key == "" {
			continue
		}
		if idx, ok := byName[key]; ok {
			if priority > personaPriorities[ranked[idx].Persona] {
				ranked[idx] = &p
			}
			continue
		}
		byName[key] = len(ranked)
		ranked = append(ranked, &p)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return personaPriorities[ranked[i].Persona] > personaPriorities[ranked[j].Persona]
	})

	return ranked
}
