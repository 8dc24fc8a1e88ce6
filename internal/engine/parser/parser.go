// Package parser turns the text of a requirements file into dependency declarations.
// It performs no I/O; includes are returned as entries for the caller to resolve.
package parser

import (
	"iter"
	"regexp"
	"strings"

	"go.trai.ch/reqsync/internal/core/domain"
)

var (
	commentRegex = regexp.MustCompile(`(^|\s)#.*$`)
	optionRegex  = regexp.MustCompile(`\s-{1,2}[A-Za-z]`)
	clauseRegex  = regexp.MustCompile(`^(~=|===|==|!=|<=|>=|<|>)\s*([A-Za-z0-9_.*+!-]+)$`)
)

const hashOption = "--hash="

// Parse parses the requirements text read from file.
// It stops at the first line that cannot be parsed and returns a *domain.ParseError.
func Parse(file, text string) (*domain.RequirementsFile, error) {
	rf := &domain.RequirementsFile{Path: file}

	for line := range logicalLines(text) {
		content := strings.TrimSpace(commentRegex.ReplaceAllString(line.text, ""))
		if content == "" {
			continue
		}

		origin := domain.Origin{File: file, Line: line.number}
		fail := func(err error) error {
			return &domain.ParseError{File: file, Line: line.number, Text: content, Err: err}
		}

		if strings.HasPrefix(content, "-") {
			include, err := parseOption(content)
			if err != nil {
				return nil, fail(err)
			}
			rf.Entries = append(rf.Entries, domain.Entry{Origin: origin, Include: include})
			continue
		}

		req, err := parseRequirement(content)
		if err != nil {
			return nil, fail(err)
		}
		req.Origin = origin
		rf.Entries = append(rf.Entries, domain.Entry{Origin: origin, Requirement: req})
	}

	return rf, nil
}

type logicalLine struct {
	number int
	text   string
}

// logicalLines yields lines with backslash continuations joined.
// Each logical line carries the number of its first physical line.
func logicalLines(text string) iter.Seq[logicalLine] {
	return func(yield func(logicalLine) bool) {
		var (
			buf   strings.Builder
			start int
		)
		physical := strings.Split(text, "\n")
		for i, raw := range physical {
			raw = strings.TrimRight(raw, "\r")
			if buf.Len() == 0 {
				start = i + 1
			}
			trimmed := strings.TrimRight(raw, " \t")
			// A comment line never continues onto the next one.
			comment := buf.Len() == 0 && strings.HasPrefix(strings.TrimSpace(trimmed), "#")
			if !comment && strings.HasSuffix(trimmed, `\`) && i < len(physical)-1 {
				buf.WriteString(strings.TrimSuffix(trimmed, `\`))
				buf.WriteString(" ")
				continue
			}
			buf.WriteString(strings.TrimSuffix(trimmed, `\`))
			if !yield(logicalLine{number: start, text: buf.String()}) {
				return
			}
			buf.Reset()
		}
	}
}

// parseOption handles option lines. Only includes are supported.
func parseOption(content string) (string, error) {
	fields := strings.Fields(content)
	opt := fields[0]

	var path string
	switch {
	case opt == "-r" || opt == "--requirement":
		if len(fields) < 2 {
			return "", domain.ErrMissingIncludePath
		}
		path = fields[1]
		fields = fields[2:]
	case strings.HasPrefix(opt, "--requirement="):
		path = strings.TrimPrefix(opt, "--requirement=")
		fields = fields[1:]
	case strings.HasPrefix(opt, "-r") && !strings.HasPrefix(opt, "--"):
		path = strings.TrimPrefix(opt, "-r")
		fields = fields[1:]
	default:
		return "", domain.ErrUnsupportedOption
	}

	if path == "" {
		return "", domain.ErrMissingIncludePath
	}
	if len(fields) > 0 {
		return "", domain.ErrUnsupportedOption
	}
	return path, nil
}

// parseRequirement parses a PEP 508 requirement with optional trailing --hash options.
func parseRequirement(content string) (*domain.Requirement, error) {
	content, err := stripHashes(content)
	if err != nil {
		return nil, err
	}

	name, rest := scanName(content)
	if name == "" {
		return nil, domain.ErrMissingName
	}
	if !domain.IsValidName(name) {
		return nil, domain.ErrInvalidName
	}

	req := &domain.Requirement{Name: name}

	rest = strings.TrimLeft(rest, " \t")
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, domain.ErrInvalidExtras
		}
		extras, err := parseExtras(rest[1:end])
		if err != nil {
			return nil, err
		}
		req.Extras = extras
		rest = strings.TrimLeft(rest[end+1:], " \t")
	}

	if strings.HasPrefix(rest, "@") {
		if err := parseDirectReference(req, strings.TrimSpace(rest[1:])); err != nil {
			return nil, err
		}
		return req, nil
	}

	spec, marker, hasMarker := strings.Cut(rest, ";")
	if hasMarker {
		req.Marker = strings.TrimSpace(marker)
		if req.Marker == "" {
			return nil, domain.ErrInvalidMarker
		}
	}

	constraint, err := parseSpecifier(spec)
	if err != nil {
		return nil, err
	}
	req.Constraint = constraint

	return req, nil
}

// stripHashes removes trailing --hash options as written by pip-compile and uv.
func stripHashes(content string) (string, error) {
	loc := optionRegex.FindStringIndex(content)
	if loc == nil {
		return content, nil
	}
	for _, opt := range strings.Fields(content[loc[0]:]) {
		if !strings.HasPrefix(opt, hashOption) || len(opt) == len(hashOption) {
			return "", domain.ErrUnsupportedOption
		}
	}
	return strings.TrimSpace(content[:loc[0]]), nil
}

func scanName(s string) (string, string) {
	i := 0
	for i < len(s) && isNameChar(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '.' || c == '_' || c == '-'
}

func parseExtras(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	extras := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !domain.IsValidName(p) {
			return nil, domain.ErrInvalidExtras
		}
		extras = append(extras, p)
	}
	return extras, nil
}

func parseDirectReference(req *domain.Requirement, rest string) error {
	url, after, _ := strings.Cut(rest, " ")
	url = strings.TrimSpace(url)
	if url == "" {
		return domain.ErrInvalidURL
	}
	req.URL = url

	after = strings.TrimSpace(after)
	if after == "" {
		return nil
	}
	if !strings.HasPrefix(after, ";") {
		return domain.ErrInvalidURL
	}
	req.Marker = strings.TrimSpace(after[1:])
	if req.Marker == "" {
		return domain.ErrInvalidMarker
	}
	return nil
}

// parseSpecifier validates a comma separated specifier and removes inner whitespace.
func parseSpecifier(spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if strings.HasPrefix(spec, "(") {
		if !strings.HasSuffix(spec, ")") {
			return "", domain.ErrInvalidSpecifier
		}
		spec = strings.TrimSpace(spec[1 : len(spec)-1])
	}
	if spec == "" {
		return "", nil
	}

	clauses := strings.Split(spec, ",")
	for i, clause := range clauses {
		m := clauseRegex.FindStringSubmatch(strings.TrimSpace(clause))
		if m == nil {
			return "", domain.ErrInvalidSpecifier
		}
		clauses[i] = m[1] + m[2]
	}
	return strings.Join(clauses, ","), nil
}
