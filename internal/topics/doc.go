// Package topics holds the practice topic taxonomy: the fixed mapping from a
// topic number to the folder its questions are created in. The built-in table
// covers the fourteen standard categories; a YAML override can be loaded with
// Load and is validated against an embedded JSON Schema before use.
package topics
