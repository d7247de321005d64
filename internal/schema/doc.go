// Package schema describes build variants declaratively: which keys a variant
// reads, which of them are mandatory, their defaults, and how each value is
// quoted when it becomes a preprocessor definition. The built-in variants
// mirror the firmware targets in this repository; further variants can be
// decoded from YAML.
package schema
