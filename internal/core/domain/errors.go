package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingName is returned when a requirement line has no parseable package name.
	ErrMissingName = zerr.New("requirement has no package name")

	// ErrInvalidName is returned when a package name is not a valid PEP 508 name.
	ErrInvalidName = zerr.New("invalid package name")

	// ErrInvalidExtras is returned when the extras list of a requirement is malformed.
	ErrInvalidExtras = zerr.New("invalid extras")

	// ErrInvalidSpecifier is returned when a version specifier cannot be parsed.
	ErrInvalidSpecifier = zerr.New("invalid version specifier")

	// ErrInvalidMarker is returned when an environment marker is empty.
	ErrInvalidMarker = zerr.New("invalid environment marker")

	// ErrInvalidURL is returned when a direct reference has no URL.
	ErrInvalidURL = zerr.New("invalid direct reference url")

	// ErrUnsupportedOption is returned for pip options other than -r and --hash.
	ErrUnsupportedOption = zerr.New("unsupported requirements option")

	// ErrMissingIncludePath is returned when -r is not followed by a path.
	ErrMissingIncludePath = zerr.New("missing include path")

	// ErrDuplicateRequirement is returned when a package is declared twice with the same marker.
	ErrDuplicateRequirement = zerr.New("duplicate requirement")

	// ErrIncludeCycle is returned when requirements files include each other.
	ErrIncludeCycle = zerr.New("include cycle detected")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config")

	// ErrUnsupportedConfigVersion is returned when the config declares an unknown schema version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidProjectName is returned when the project name is not a valid PEP 508 name.
	ErrInvalidProjectName = zerr.New("invalid project name")

	// ErrInvalidProjectVersion is returned when the project version is not a PEP 440 version.
	ErrInvalidProjectVersion = zerr.New("invalid project version")

	// ErrInvalidGroupName is returned when a dependency group name is invalid.
	ErrInvalidGroupName = zerr.New("invalid group name")

	// ErrEmptyGroup is returned when a group has neither packages nor a source.
	ErrEmptyGroup = zerr.New("group needs packages or a source")

	// ErrPackageInMultipleGroups is returned when a package is assigned to more than one group.
	ErrPackageInMultipleGroups = zerr.New("package assigned to multiple groups")

	// ErrUnsupportedEncoding is returned when the configured source encoding is unknown.
	ErrUnsupportedEncoding = zerr.New("unsupported encoding")

	// ErrUnsupportedGroupTable is returned when the configured group table is unknown.
	ErrUnsupportedGroupTable = zerr.New("unsupported group table, expected 'dependency-groups' or 'optional-dependencies'")

	// ErrSourceReadFailed is returned when a requirements file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read requirements file")

	// ErrSourceDecodeFailed is returned when a requirements file cannot be decoded as text.
	ErrSourceDecodeFailed = zerr.New("failed to decode requirements file")

	// ErrManifestEncodeFailed is returned when the manifest cannot be rendered.
	ErrManifestEncodeFailed = zerr.New("failed to encode manifest")

	// ErrManifestReadFailed is returned when the existing manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestWriteFailed is returned when the manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestStale is returned by check when the manifest on disk differs from the generated one.
	ErrManifestStale = zerr.New("manifest is out of date")

	// ErrWatcherFailed is returned when the file watcher cannot be started or extended.
	ErrWatcherFailed = zerr.New("failed to watch files")
)
