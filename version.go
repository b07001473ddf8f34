package grouping

// Version is the library version, overridable at build time via
// -ldflags "-X github.com/timmens/random-grouping.Version=...".
var Version = "0.2.0-dev"
