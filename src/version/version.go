package version

// Version is the CLI version string. Overridden at release time via
// -ldflags "-X chef-backup/src/version.Version=...".
var Version = "0.1.0-dev"
