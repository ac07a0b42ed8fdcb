package messages

// Doctor messages.
const (
	DoctorCheckNameOras      = "Oras client"
	DoctorCheckNameImagePath = "Image path"
	DoctorCheckNameConfig    = "Config"

	DoctorHealthCheckFmt = "Checking pull environment (image path %s)\n\n"

	DoctorOrasResolvedFmt      = "using %s"
	DoctorOrasNotFoundFmt      = "no oras executable: %v"
	DoctorOrasNotFoundRecmd    = "install oras or set oras.path in the config file"
	DoctorOrasNotRunnableFmt   = "oras version failed: %v"
	DoctorOrasNotRunnableRecmd = "check that the configured oras executable is a working build"

	DoctorImagePathOKFmt        = "%s is writable"
	DoctorImagePathFmt          = "cannot write to %s: %v"
	DoctorImagePathRecmd        = "create the directory or pick a writable --image-path"
	DoctorConfigOKFmt           = "loaded %s"
	DoctorConfigDefault         = "no config file; using defaults"
	DoctorConfigLoadFailedFmt   = "failed to load config: %v"
	DoctorConfigLoadFailedRecmd = "fix or remove the config file"

	// DoctorResultLineFmt formats one check line: status, name, message.
	DoctorResultLineFmt = "%s %s: %s\n"
	// DoctorRecommendationFmt formats the indented remediation line.
	DoctorRecommendationFmt = "       recommendation: %s\n"

	DoctorStatusOKLabel   = "[ OK ]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorFailureSummary = "Some checks failed."
	DoctorSuccessSummary = "All checks passed."
	DoctorFailureError   = "doctor found problems"
)
