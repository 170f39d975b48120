package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Version is a parsed interpreter version. Missing components are zero.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a dotted version string such as "3.11.2" or "3.11".
// Anything beyond the third component is ignored.
func ParseVersion(s string) (Version, error) {
	v, _, err := parseVersionParts(s)
	return v, err
}

func parseVersionParts(s string) (Version, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, 0, zerr.With(ErrInvalidVersion, "version", s)
	}
	fields := strings.Split(s, ".")
	if len(fields) > 3 {
		fields = fields[:3]
	}
	var nums [3]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return Version{}, 0, zerr.With(ErrInvalidVersion, "version", s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, len(fields), nil
}

// Compare returns -1, 0 or 1 ordering v against o.
func (v Version) Compare(o Version) int {
	for _, d := range [3]int{v.Major - o.Major, v.Minor - o.Minor, v.Patch - o.Patch} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}
	return 0
}

// String returns the dotted form of the version.
func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
}

// truncate zeroes every component beyond the given precision, so "==3.11"
// can compare at two-component precision.
func (v Version) truncate(precision int) Version {
	if precision < 3 {
		v.Patch = 0
	}
	if precision < 2 {
		v.Minor = 0
	}
	return v
}

type comparator struct {
	op        string
	version   Version
	precision int
}

func (c comparator) match(v Version) bool {
	switch c.op {
	case "==":
		return v.truncate(c.precision).Compare(c.version) == 0
	case "!=":
		return v.truncate(c.precision).Compare(c.version) != 0
	case ">=":
		return v.Compare(c.version) >= 0
	case "<=":
		return v.Compare(c.version) <= 0
	case ">":
		return v.Compare(c.version) > 0
	case "<":
		return v.Compare(c.version) < 0
	}
	return false
}

// Constraint is a parsed interpreter-version constraint: either a caret
// specifier ("^3.9", compatible within the same major version) or a
// comma-separated list of exact comparators (">=3.9,<3.13", "==3.11").
type Constraint struct {
	comparators []comparator
}

// ParseConstraint parses a constraint string.
func ParseConstraint(s string) (Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Constraint{}, zerr.With(ErrInvalidConstraint, "constraint", s)
	}

	if rest, ok := strings.CutPrefix(s, "^"); ok {
		base, _, err := parseVersionParts(rest)
		if err != nil {
			return Constraint{}, zerr.With(ErrInvalidConstraint, "constraint", s)
		}
		return Constraint{comparators: []comparator{
			{op: ">=", version: base, precision: 3},
			{op: "<", version: Version{Major: base.Major + 1}, precision: 3},
		}}, nil
	}

	var comparators []comparator
	for term := range strings.SplitSeq(s, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			return Constraint{}, zerr.With(ErrInvalidConstraint, "constraint", s)
		}
		op := "=="
		rest := term
		for _, candidate := range []string{"==", "!=", ">=", "<=", ">", "<"} {
			if r, ok := strings.CutPrefix(term, candidate); ok {
				op, rest = candidate, r
				break
			}
		}
		version, precision, err := parseVersionParts(rest)
		if err != nil {
			return Constraint{}, zerr.With(ErrInvalidConstraint, "constraint", s)
		}
		comparators = append(comparators, comparator{op: op, version: version, precision: precision})
	}
	return Constraint{comparators: comparators}, nil
}

// Check reports whether v satisfies every comparator of the constraint.
func (c Constraint) Check(v Version) bool {
	if len(c.comparators) == 0 {
		return false
	}
	for _, cmp := range c.comparators {
		if !cmp.match(v) {
			return false
		}
	}
	return true
}
