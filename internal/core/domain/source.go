package domain

// Encoding names the text encoding of a requirements file.
type Encoding string

const (
	// EncodingAuto detects UTF-16 and UTF-8 byte order marks and falls back to UTF-8.
	EncodingAuto Encoding = "auto"
	// EncodingUTF8 forces UTF-8.
	EncodingUTF8 Encoding = "utf-8"
	// EncodingUTF16 reads UTF-16 using the byte order mark, little endian without one.
	EncodingUTF16 Encoding = "utf-16"
	// EncodingUTF16LE forces UTF-16 little endian.
	EncodingUTF16LE Encoding = "utf-16le"
	// EncodingUTF16BE forces UTF-16 big endian.
	EncodingUTF16BE Encoding = "utf-16be"
)

// IsValid reports whether e is a supported encoding.
func (e Encoding) IsValid() bool {
	switch e {
	case EncodingAuto, EncodingUTF8, EncodingUTF16, EncodingUTF16LE, EncodingUTF16BE:
		return true
	default:
		return false
	}
}

// Entry is one meaningful line of a requirements file.
// Exactly one of Requirement and Include is set.
type Entry struct {
	Origin      Origin
	Requirement *Requirement
	Include     string
}

// RequirementsFile is the parsed content of a single requirements file.
type RequirementsFile struct {
	Path    string
	Entries []Entry
}

// Requirements returns the declarations of the file, skipping includes.
func (f *RequirementsFile) Requirements() []Requirement {
	reqs := make([]Requirement, 0, len(f.Entries))
	for _, e := range f.Entries {
		if e.Requirement != nil {
			reqs = append(reqs, *e.Requirement)
		}
	}
	return reqs
}

// SourceSet is a requirements source with its includes flattened.
type SourceSet struct {
	// Path is the top-level file.
	Path string
	// Group is the dependency group the source feeds, empty for the runtime section.
	Group string
	// Files lists every file read, top-level first.
	Files []string
	// Requirements are the declarations in include order.
	Requirements []Requirement
}
