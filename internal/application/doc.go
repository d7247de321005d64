// Package application wires the variant registry, the loader, the flag
// formatter and the injection target together, keeping the main package
// focused on CLI parsing.
package application
