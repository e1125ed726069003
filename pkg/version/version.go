package version

// Version holds the curaprof version.
// It is overridden at build time with `-ldflags "-X github.com/curaprof/curaprof/pkg/version.Version=..."`.
var Version = "1.1.0"
