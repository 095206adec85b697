package miner

import "strings"

// MergeContacts unifies contact fragments that share a normalized email
// or phone.
//
// Fragments are grouped by looking up an existing group first by email,
// then by phone. On a hit the group absorbs the fragment: evidence URLs
// and sources are unioned, and an empty role, email or phone on the group
// is backfilled from the fragment. On a miss the fragment starts a new
// group, registered under whichever of its keys are non-empty. Groups are
// keyed at creation only; backfilled keys do not re-register.
//
// The output preserves first-seen group order and is deduplicated by the
// (email, phone) pair as a safety net against a record reachable through
// both maps. Fragments with neither email nor phone are discarded.
func MergeContacts(contacts []RawContact) []*MergedContact {
	emailGroups := make(map[string]*MergedContact)
	phoneGroups := make(map[string]*MergedContact)
	var groups []*MergedContact

	for _, c := range contacts {
		email := normalizeEmail(c.Email)
		phone := NormalizePhone(c.Phone)
		if email == "" && phone == "" {
			continue
		}

		var group *MergedContact
		if email != "" {
			group = emailGroups[email]
		}
		if group == nil && phone != "" {
			group = phoneGroups[phone]
		}

		if group != nil {
			group.EvidenceURLs = appendMissing(group.EvidenceURLs, c.EvidenceURLs...)
			group.Sources = appendMissingSources(group.Sources, c.Source)
			if group.Role == "" && c.Role != "" {
				group.Role = c.Role
			}
			if group.Email == "" && email != "" {
				group.Email = email
			}
			if group.Phone == "" && phone != "" {
				group.Phone = phone
			}
			continue
		}

		group = &MergedContact{
			Email:        email,
			Phone:        phone,
			Role:         c.Role,
			EvidenceURLs: appendMissing(nil, c.EvidenceURLs...),
			Sources:      appendMissingSources(nil, c.Source),
		}
		if email != "" {
			emailGroups[email] = group
		}
		if phone != "" {
			phoneGroups[phone] = group
		}
		groups = append(groups, group)
	}

	type key struct {
		email string
		phone string
	}
	seen := make(map[key]bool)
	merged := make([]*MergedContact, 0, len(groups))
	for _, g := range groups {
		k := key{email: normalizeEmail(g.Email), phone: NormalizePhone(g.Phone)}
		if seen[k] {
			continue
		}
		seen[k] = true
		merged = append(merged, g)
	}

	return merged
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// appendMissing appends values not already present, preserving order.
func appendMissing(dst []string, values ...string) []string {
	for _, v := range values {
		if v == "" {
			continue
		}
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}

func appendMissingSources(dst []Engine, source Engine) []Engine {
	if source == EngineNone {
		return dst
	}
	for _, existing := range dst {
		if existing == source {
			return dst
		}
	}
	return append(dst, source)
}
