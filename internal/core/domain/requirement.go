package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nameRegex      = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	separatorRegex = regexp.MustCompile(`[-_.]+`)
)

// Origin locates a declaration in its source file.
type Origin struct {
	File string
	Line int
}

// String returns the origin as file:line.
func (o Origin) String() string {
	return o.File + ":" + strconv.Itoa(o.Line)
}

// Requirement is a single dependency declaration.
type Requirement struct {
	// Name is the package name as written in the source.
	Name string
	// Extras are the optional features requested in brackets.
	Extras []string
	// Constraint is the version specifier, e.g. ">=1.24" or ">=1.3,<1.5".
	Constraint string
	// URL is the direct reference target for "name @ url" declarations.
	URL string
	// Marker is the environment marker following ';'.
	Marker string
	// Origin is where the declaration was read from.
	Origin Origin
}

// String renders the requirement in PEP 508 form.
func (r Requirement) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	if len(r.Extras) > 0 {
		sb.WriteString("[" + strings.Join(r.Extras, ",") + "]")
	}
	if r.URL != "" {
		sb.WriteString(" @ " + r.URL)
		if r.Marker != "" {
			// A space is required so the marker is not read as part of the URL.
			sb.WriteString(" ; " + r.Marker)
		}
		return sb.String()
	}
	sb.WriteString(r.Constraint)
	if r.Marker != "" {
		sb.WriteString("; " + r.Marker)
	}
	return sb.String()
}

// NormalizedName returns the PEP 503 form of the package name.
func (r Requirement) NormalizedName() string {
	return NormalizeName(r.Name)
}

// Key identifies the declaration for duplicate detection.
// The same package may appear more than once under different markers.
func (r Requirement) Key() string {
	marker := strings.Join(strings.Fields(r.Marker), " ")
	if marker == "" {
		return r.NormalizedName()
	}
	return r.NormalizedName() + ";" + marker
}

// NormalizeName lowercases a package name and collapses runs of '-', '_' and '.' to '-'.
func NormalizeName(name string) string {
	return separatorRegex.ReplaceAllString(strings.ToLower(name), "-")
}

// IsValidName reports whether name is a valid PEP 508 distribution name.
func IsValidName(name string) bool {
	return nameRegex.MatchString(name)
}
