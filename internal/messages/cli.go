package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name with its positional argument.
	RootUse = "uenvpull <address:tag>"
	// RootShort is the short description for the root command.
	RootShort = "Pull uenv images from an OCI registry"
	RootLong  = "Pull the metadata and squashfs image of a uenv from an OCI registry using the oras client."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagImagePath    = "Directory the image is downloaded into"
	FlagSize         = "Expected size of the squashfs image in bytes (enables the progress bar)"
	FlagNoMeta       = "Skip pulling the metadata bundle"
	FlagNoSqfs       = "Skip pulling the squashfs image"
	FlagForce        = "Replace existing local files without prompting"
	FlagVerbose      = "Print every oras invocation and its outcome"
	FlagConfig       = "Path to the config file"
	FlagOrasPath     = "Path to the oras executable (overrides config and lookup)"
	FlagPollInterval = "Progress poll interval, e.g. 250ms"

	RootMissingAddress = "an image address of the form registry/path/name:tag is required"
	RootNothingToPull  = "both --no-meta and --no-sqfs are set; nothing to pull"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check that the environment can pull images"
)
