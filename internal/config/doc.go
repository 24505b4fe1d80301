// Package config loads the optional `.mkgraph.hcl` settings file.
//
// The file holds top-level attributes only, each mirroring a command-line
// flag. Expressions may read the process environment through the `env`
// object:
//
//	file          = "${env.HOME}/src/project/Makefile"
//	format        = "order"
//	select        = ["prog", "lib/*.o"]
//	phony_targets = true
//	log_level     = "debug"
//	log_format    = "json"
//
// Flags given on the command line take precedence over the file.
package config
