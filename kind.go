package pms

import "strings"

// Kind is the asset class of a Holding.
type Kind int

const (
	Stock Kind = iota
	Bond
	MutualFund
	Cryptocurrency

	numKinds = iota
)

// kindTags are the tags used in the portfolio file, indexed by Kind.
var kindTags = [numKinds]string{
	Stock:          "Stock",
	Bond:           "Bond",
	MutualFund:     "MutualFund",
	Cryptocurrency: "Cryptocurrency",
}

// kindAliases are the short names accepted on the command line and in the
// interactive session.
var kindAliases = map[string]Kind{
	"stock":  Stock,
	"bond":   Bond,
	"mutual": MutualFund,
	"crypto": Cryptocurrency,
}

// Kinds returns all asset classes in their canonical order.
func Kinds() []Kind { return []Kind{Stock, Bond, MutualFund, Cryptocurrency} }

func (k Kind) valid() bool { return k >= 0 && k < numKinds }

// String returns the tag of the kind as persisted in the portfolio file.
func (k Kind) String() string {
	if !k.valid() {
		return "Unknown"
	}
	return kindTags[k]
}

// Label returns a human readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case MutualFund:
		return "Mutual Fund"
	default:
		return k.String()
	}
}

// ParseKind returns the Kind for an exact file tag.
func ParseKind(tag string) (Kind, bool) {
	for k, t := range kindTags {
		if t == tag {
			return Kind(k), true
		}
	}
	return 0, false
}

// ParseKindAlias is the lenient version of ParseKind used for user input: it
// accepts the short aliases (stock, bond, mutual, crypto) and the file tags,
// case-insensitively.
func ParseKindAlias(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if k, ok := kindAliases[s]; ok {
		return k, true
	}
	for k, t := range kindTags {
		if strings.ToLower(t) == s {
			return Kind(k), true
		}
	}
	return 0, false
}
