package grid

import (
	"strconv"
	"strings"
)

// StarList is a parsed star-index string such as "0,2".
//
// Tokens are matched against indices by exact string equality with the
// index's decimal form, so "01" and " 1" never match index 1. Malformed
// tokens are kept but can never match.
type StarList struct {
	tokens []string
	set    map[string]struct{}
}

// ParseStarList splits s on commas. The empty string yields an empty list.
func ParseStarList(s string) StarList {
	if s == "" {
		return StarList{}
	}
	return newStarList(strings.Split(s, ","))
}

// StarIndices builds a StarList from integer indices. Negative indices are dropped.
func StarIndices(indices ...int) StarList {
	tokens := make([]string, 0, len(indices))
	for _, i := range indices {
		if i >= 0 {
			tokens = append(tokens, strconv.Itoa(i))
		}
	}
	return newStarList(tokens)
}

func newStarList(tokens []string) StarList {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return StarList{tokens: tokens, set: set}
}

// Contains reports whether index i is named by the list.
func (l StarList) Contains(i int) bool {
	_, ok := l.set[strconv.Itoa(i)]
	return ok
}

// Len returns the number of tokens, including ones that can never match.
func (l StarList) Len() int {
	return len(l.tokens)
}

// Tokens returns a copy of the raw tokens in order.
func (l StarList) Tokens() []string {
	return append([]string(nil), l.tokens...)
}

// Unmatched returns the tokens that name no index in [0, n).
func (l StarList) Unmatched(n int) []string {
	var out []string
	for _, t := range l.tokens {
		i, err := strconv.Atoi(t)
		if err != nil || i < 0 || i >= n || strconv.Itoa(i) != t {
			out = append(out, t)
		}
	}
	return out
}

// String joins the tokens back into the comma-separated form.
func (l StarList) String() string {
	return strings.Join(l.tokens, ",")
}

// BuildDefinitions returns the definition list a count change produces:
// count auto-sized definitions with the starred indices set to Star(1).
// A negative count yields nil.
func BuildDefinitions(count int, stars StarList) []Definition {
	if count < 0 {
		return nil
	}
	defs := make([]Definition, count)
	for i := range defs {
		defs[i] = AutoDefinition()
	}
	return ApplyStars(defs, stars)
}

// ApplyStars returns a copy of defs with every starred index set to Star(1).
// Other definitions keep their sizing.
func ApplyStars(defs []Definition, stars StarList) []Definition {
	out := make([]Definition, len(defs))
	copy(out, defs)
	for i := range out {
		if stars.Contains(i) {
			out[i].Size = Star(1)
		}
	}
	return out
}
