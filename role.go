package miner

import "strings"

// roleCategory pairs a role label with the phrases that trigger it.
// Order matters: the first category with a matching phrase wins.
type roleCategory struct {
	role    string
	phrases []string
}

var roleCategories = []roleCategory{
	{RolePMS, []string{"portfolio manager", "portfolio management", "pms"}},
	{RoleInsuranceAgent, []string{"insurance agent", "insurance advisor", "insurance consultant"}},
	{RoleIFA, []string{"independent financial advisor", "ifa", "financial advisor"}},
	{RoleMutualFund, []string{"mutual fund", "mutual fund manager", "amc", "asset management company"}},
	{RoleInvestmentAdvisor, []string{"investment advisor", "investment adviser"}},
}

// RoleFromText returns the role label whose trigger phrase appears first
// (in category order) in the text, or "" when no phrase is present. The
// match is a case-insensitive substring check; roles are never inferred
// from job-title-shaped text without one of these phrases.
func RoleFromText(text string) string {
	lower := strings.ToLower(text)
	for _, cat := range roleCategories {
		for _, phrase := range cat.phrases {
			if strings.Contains(lower, phrase) {
				return cat.role
			}
		}
	}
	return ""
}
