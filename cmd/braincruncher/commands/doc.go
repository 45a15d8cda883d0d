// Package commands defines the braincruncher CLI and wires dependencies for subcommands.
//
// Commands
//
//   - play       Reveal a puzzle step by step and check the typed answer
//   - generate   Print (and optionally save) a new puzzle
//   - show       Print a saved puzzle with its worked steps
//   - list       List saved puzzles
//   - profiles   Print the difficulty presets
//
// # Implementation
//
// Configuration comes from the environment (and an optional .env file);
// persistent flags override it. The root command builds the generator,
// solver, validator and file store before any subcommand runs, so handlers
// share one use-case service and logger.
package commands
