// Package version records the version of the pngstash tool.
package version

// Version is a human-readable version string.
const Version = "0.1.0"
