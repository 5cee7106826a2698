package config

// Version is the biograph binary version.
// Set at build time via: -ldflags "-X github.com/biographdb/biograph/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
