// Package main hosts the feedtally CLI.
//
// The root command runs a batch over a directory of feed documents and prints
// one line per document followed by the item total. Subcommands cross-check
// documents against gofeed, list element attributes, and scaffold or show
// configuration. Parsing and coordination live in the internal packages; this
// package only resolves configuration, builds the logger, and wires output.
package main
