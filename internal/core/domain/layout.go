package domain

import "os"

const (
	// ConfigFileName is the name of the reqsync configuration file.
	ConfigFileName = "reqsync.yaml"

	// DefaultSource is the requirements file read when none is configured.
	DefaultSource = "requirements.txt"

	// DefaultOutput is the manifest written when none is configured.
	DefaultOutput = "pyproject.toml"

	// DefaultProjectVersion is used when the config does not set a version.
	DefaultProjectVersion = "0.1.0"

	// ConfigVersion is the only supported config schema version.
	ConfigVersion = "1"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm os.FileMode = 0o750

	// FilePerm is the permission for the generated manifest (rw-r--r--).
	FilePerm os.FileMode = 0o644
)
