package notify

import (
	"fmt"
	"strconv"
)

// SeeAlso controls how many "see also" entries become actions: none, all,
// or the first N. It implements pflag.Value.
type SeeAlso struct {
	all   bool
	limit int
}

func ParseSeeAlso(s string) (SeeAlso, error) {
	var v SeeAlso
	if err := v.Set(s); err != nil {
		return SeeAlso{}, err
	}
	return v, nil
}

func (s *SeeAlso) Set(value string) error {
	switch value {
	case "no":
		*s = SeeAlso{}
	case "yes":
		*s = SeeAlso{all: true}
	default:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected no, yes, or a number, got %q", value)
		}
		if n < 0 {
			return fmt.Errorf("see-also count is negative: %d", n)
		}
		*s = SeeAlso{limit: n}
	}
	return nil
}

func (s *SeeAlso) String() string {
	switch {
	case s.all:
		return "yes"
	case s.limit > 0:
		return strconv.Itoa(s.limit)
	default:
		return "no"
	}
}

func (s *SeeAlso) Type() string { return "no|yes|<n>" }

// Enabled reports whether any entries should be requested.
func (s SeeAlso) Enabled() bool {
	return s.all || s.limit > 0
}

// Slice returns the entries of list to map to actions.
func (s SeeAlso) Slice(list []string) []string {
	switch {
	case s.all:
		return list
	case s.limit > 0:
		return list[:min(s.limit, len(list))]
	default:
		return nil
	}
}
