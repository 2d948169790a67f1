package service

import (
	"fmt"
	"strings"

	"github.com/yndnr/perfconf/internal/core/domain"
)

// Mode selects what the resolver lists.
type Mode int

const (
	// ModeList shows only collected entries.
	ModeList Mode = iota
	// ModeListAll shows every default and every collected entry.
	ModeListAll
	// ModeQuery shows the entries named by query terms.
	ModeQuery
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeListAll:
		return "list-all"
	case ModeQuery:
		return "query"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Term is a parsed section.key query argument.
type Term struct {
	Section string
	Key     string
}

// Name returns the dotted section.key name.
func (t Term) Name() string {
	return t.Section + "." + t.Key
}

// ParseTerm splits arg on its first '.'.
func ParseTerm(arg string) (Term, error) {
	section, key, ok := strings.Cut(arg, ".")
	switch {
	case !ok || section == "":
		return Term{}, domain.ErrMalformedTerm.WithDetails(
			fmt.Sprintf("the config variable does not contain a section: %s", arg))
	case key == "":
		return Term{}, domain.ErrMalformedTerm.WithDetails(
			fmt.Sprintf("the config variable does not contain a variable name: %s", arg))
	}
	return Term{Section: section, Key: key}, nil
}

// ParseTerms parses every argument and stops at the first malformed one.
func ParseTerms(args []string) ([]Term, error) {
	terms := make([]Term, 0, len(args))
	for _, arg := range args {
		t, err := ParseTerm(arg)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// Query is the resolved action for one invocation.
type Query struct {
	Mode  Mode
	Terms []Term
}

// QueryFlags are the action selectors given on the command line.
type QueryFlags struct {
	List    bool
	ListAll bool
}

// NewQuery validates the action flags against the positional arguments.
//
// Both action flags at once, or an action flag with arguments, is a usage
// error. Without an action flag, arguments select ModeQuery and no
// arguments select ModeList. Arguments are fully parsed before the query
// is returned, so a malformed term fails before any lookup.
func NewQuery(flags QueryFlags, args []string) (Query, error) {
	if flags.List && flags.ListAll {
		return Query{}, domain.ErrUsage.WithDetails("options --list and --list-all cannot be used together")
	}

	if flags.List || flags.ListAll {
		if len(args) > 0 {
			return Query{}, domain.ErrUsage.WithDetails("takes no arguments")
		}
		if flags.ListAll {
			return Query{Mode: ModeListAll}, nil
		}
		return Query{Mode: ModeList}, nil
	}

	if len(args) == 0 {
		return Query{Mode: ModeList}, nil
	}

	terms, err := ParseTerms(args)
	if err != nil {
		return Query{}, err
	}
	return Query{Mode: ModeQuery, Terms: terms}, nil
}
