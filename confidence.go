package miner

import "fmt"

// ConfidenceThreshold is the minimum confidence for a merged contact to
// be accepted. The same threshold gates acceptance everywhere; there is
// no separate discovery-side confidence gate.
const ConfidenceThreshold = 50

// ScoreConfidence assigns a 0-100 confidence score to a merged contact
// and records a human-readable reason per triggered signal. The score
// and reasons are written onto the contact; the returned value equals
// the written score.
//
// Signals are independent and additive:
//
//	email on the company domain        +25
//	phone present                      +15
//	role explicitly stated             +25
//	evidence spans two or more pages   +20
//	two or more discovery engines      +15
func ScoreConfidence(c *MergedContact, companyDomain string) int {
	score := 0
	var reasons []string

	if c.Email != "" && EmailMatchesDomain(c.Email, companyDomain) {
		score += 25
		reasons = append(reasons, "Email on official domain")
	}

	if c.Phone != "" {
		score += 15
		reasons = append(reasons, "Phone found on official site")
	}

	if c.Role != "" {
		score += 25
		reasons = append(reasons, "Role explicitly stated")
	}

	if len(c.EvidenceURLs) >= 2 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("Found on %d pages", len(c.EvidenceURLs)))
	}

	if len(c.Sources) >= 2 {
		score += 15
		reasons = append(reasons, "Cross-source confirmation")
	}

	c.Confidence = score
	c.ConfidenceReasons = reasons

	return score
}

// AcceptContact reports whether a scored contact clears
// ConfidenceThreshold.
func AcceptContact(c *MergedContact) bool {
	return c.Confidence >= ConfidenceThreshold
}
