package messages

// Messages for the oras client and the pull orchestrator.
const (
	// OrasNotFoundFmt formats the failure to locate any oras executable.
	OrasNotFoundFmt = "no oras executable found (looked for %s and oras on PATH)"
	// OrasLaunchFmt formats a failed subprocess spawn.
	OrasLaunchFmt = "failed to start %s: %v"
	// OrasCallingFmt traces an oras invocation in verbose mode.
	OrasCallingFmt = "calling oras: %s"
	// OrasSuccessFmt traces a successful oras command in verbose mode.
	OrasSuccessFmt = "oras command successful: %s"

	// OrasCommandFailedFmt formats a nonzero oras exit; stderr is always included verbatim.
	OrasCommandFailedFmt = "oras command failed: %s"
	// OrasHintLabel prefixes a remediation hint attached to a failure.
	OrasHintLabel = "Hint"

	// HintRegistryPermission is attached when oras reports a manifest permission failure.
	HintRegistryPermission = "check that you have permission to pull from the target registry, or contact your service desk with the full command and output (preferably with the --verbose flag)."

	// DiscoverFailedFmt wraps any discovery failure.
	DiscoverFailedFmt = "discovery failed: %v"
	// DiscoverDecodeFmt formats a malformed discovery response.
	DiscoverDecodeFmt = "malformed discover response: %v"
	// DiscoverNoManifests reports a discovery response with an empty manifest list.
	DiscoverNoManifests = "no matching artifact is available"
	// DiscoverMissingManifests reports a discovery response without a manifests list.
	DiscoverMissingManifests = "discover response has no manifests list"
	// DiscoverEmptyDigest reports a manifest record without a digest.
	DiscoverEmptyDigest = "discover response manifest has an empty digest"

	// PullInvalidAddressFmt formats an address that has no tag separator.
	PullInvalidAddressFmt = "invalid image address %q: expected registry/path/name:tag"
	// PullCancelled reports a user interrupt during a pull.
	PullCancelled = "image pull cancelled by user"
	// PullReplaceDeclined reports that the user kept the existing local image.
	PullReplaceDeclined = "existing image left in place"
	// PullMetaFailedFmt formats a failed metadata discovery or transfer.
	PullMetaFailedFmt = "failed to pull meta data: %w"
	// PullSqfsFailedFmt formats a failed squashfs transfer.
	PullSqfsFailedFmt = "image pull failed: %w"
	// PullCleanupFmt formats a failure to remove stale local state.
	PullCleanupFmt = "failed to remove existing %s: %v"

	// PullReplacePromptFmt asks before replacing existing local files.
	PullReplacePromptFmt = "Replace existing files under %s?"

	// ProgressLabelFmt formats the progress bar label as transferred/total MB.
	ProgressLabelFmt = "%d/%d MB"
)
