package recommend

import "strings"

// Normalize folds an attribute string into its canonical comparable form.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// attributeSet is a deduplicated set of normalized attribute strings that
// remembers the original (trimmed) form of each entry for display.
type attributeSet struct {
	keys  []string
	forms map[string]string
}

func newAttributeSet(groups ...[]string) attributeSet {
	set := attributeSet{forms: make(map[string]string)}
	for _, group := range groups {
		for _, raw := range group {
			n := Normalize(raw)
			if n == "" {
				continue
			}
			if _, ok := set.forms[n]; ok {
				continue
			}
			set.forms[n] = strings.TrimSpace(raw)
			set.keys = append(set.keys, n)
		}
	}
	return set
}

func (s attributeSet) empty() bool {
	return len(s.keys) == 0
}

func (s attributeSet) contains(normalized string) bool {
	_, ok := s.forms[normalized]
	return ok
}

// containsSubstring reports whether any set entry contains the candidate or
// the candidate contains a set entry. This recovers partial matches such as
// "react" against "reactjs".
func (s attributeSet) containsSubstring(normalized string) bool {
	if normalized == "" {
		return false
	}
	for _, k := range s.keys {
		if strings.Contains(k, normalized) || strings.Contains(normalized, k) {
			return true
		}
	}
	return false
}

// profileAttributes builds the lexical attribute set for one recommendation
// call: skills for jobs, skills plus interests for resources.
func profileAttributes(p Profile, kind Kind) attributeSet {
	if kind == KindResource {
		return newAttributeSet(p.Skills, p.Interests)
	}
	return newAttributeSet(p.Skills)
}
