package eutils

import (
	"fmt"
	"strings"
	"time"
)

// Logic selects how multiple search keywords are joined into one term.
type Logic string

// Supported keyword logic modes.
const (
	LogicAnd    Logic = "AND"
	LogicOr     Logic = "OR"
	LogicCustom Logic = "CUSTOM"
)

// ParseLogic parses a logic mode name, case-insensitively.
func ParseLogic(s string) (Logic, error) {
	switch Logic(strings.ToUpper(strings.TrimSpace(s))) {
	case LogicAnd:
		return LogicAnd, nil
	case LogicOr:
		return LogicOr, nil
	case LogicCustom:
		return LogicCustom, nil
	default:
		return "", fmt.Errorf("invalid logic %q (must be AND, OR or CUSTOM)", s)
	}
}

// BuildTerm combines the keywords into a single search term. With CUSTOM
// logic the caller-provided boolean expression is used verbatim and the
// keyword list is ignored.
func BuildTerm(keywords []string, logic Logic, customExpr string) (string, error) {
	if logic == LogicCustom {
		if strings.TrimSpace(customExpr) == "" {
			return "", ErrMissingCustomExpr
		}
		return customExpr, nil
	}

	if len(keywords) == 0 {
		return "", ErrNoKeywords
	}

	switch logic {
	case LogicAnd:
		return strings.Join(keywords, " AND "), nil
	case LogicOr:
		return strings.Join(keywords, " OR "), nil
	default:
		return "", fmt.Errorf("invalid logic %q (must be AND, OR or CUSTOM)", logic)
	}
}

// dateLayout is the publication date format the E-utilities expect.
const dateLayout = "2006/01/02"

// ValidateDate checks a date bound against the YYYY/MM/DD format.
func ValidateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY/MM/DD", s)
	}
	return nil
}
