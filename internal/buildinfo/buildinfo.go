package buildinfo

// Product is the operating system name shown in banners and prompts.
var Product = "AstraeaOS"

// Version is set at build time via -ldflags.
var Version = "v0.1.1"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
