// Package config manages user-level settings stored at ~/.dsatrack/config.yaml
// and DSA_* environment variables: the workspace root, the solution template
// path, an optional topic table override, the README location and the default
// difficulty recorded for new README entries.
package config
