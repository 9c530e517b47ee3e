package suggestion

import "strings"

// Merge combines customer-table matches and reservation-history matches into
// one deduplicated candidate list. Customers come first so they win over
// reservation-derived pseudo-customers at equal identity keys. Two candidates
// are the same person when they share a phone number, or failing that an
// email, or failing both the (name, surname) pair. The result is capped at
// limit entries.
func Merge(clients, stubs []Candidate, limit int) []Candidate {
	if limit <= 0 {
		return nil
	}

	seenPhone := map[string]bool{}
	seenEmail := map[string]bool{}
	seenName := map[string]bool{}

	merged := make([]Candidate, 0, limit)
	for _, c := range append(append([]Candidate{}, clients...), stubs...) {
		if isDuplicate(c, seenPhone, seenEmail, seenName) {
			continue
		}
		registerKeys(c, seenPhone, seenEmail, seenName)
		merged = append(merged, c)
		if len(merged) == limit {
			break
		}
	}
	return merged
}

func isDuplicate(c Candidate, seenPhone, seenEmail, seenName map[string]bool) bool {
	if k := phoneKey(c.Phone); k != "" && seenPhone[k] {
		return true
	}
	if k := emailKey(c.Email); k != "" && seenEmail[k] {
		return true
	}
	if k := nameKey(c.FirstName, c.LastName); k != "" && seenName[k] {
		return true
	}
	return false
}

func registerKeys(c Candidate, seenPhone, seenEmail, seenName map[string]bool) {
	if k := phoneKey(c.Phone); k != "" {
		seenPhone[k] = true
	}
	if k := emailKey(c.Email); k != "" {
		seenEmail[k] = true
	}
	if k := nameKey(c.FirstName, c.LastName); k != "" {
		seenName[k] = true
	}
}

func phoneKey(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func nameKey(first, last string) string {
	f := strings.ToLower(strings.TrimSpace(first))
	l := strings.ToLower(strings.TrimSpace(last))
	if f == "" && l == "" {
		return ""
	}
	return f + "\x00" + l
}
