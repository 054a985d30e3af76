package cli

// Version and Date may be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/tilegeo/cli.Version=1.2.3' -X 'github.com/flarebyte/tilegeo/cli.Date=2026-10-15'"
var (
	Version string
	Date    string
)
