// Package cli defines the Cobra command tree for the dsa CLI. The root command
// scaffolds a question folder; each other file registers one subcommand
// (init, list, search, note, topics, export, template, doctor, config,
// version) with the root. Commands delegate to internal packages for the
// work and only handle flag parsing and output formatting.
package cli
