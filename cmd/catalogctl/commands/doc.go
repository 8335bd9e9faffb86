// Package commands defines the catalogctl CLI.
//
// Commands
//
//   - list         List programs, optionally filtered by --state or --category
//   - get          Show one program by id
//   - states       List onboarded states
//   - categories   List program categories
//   - validate     Check the catalog (and any --extra-states files) for defects
//   - publish      Export a snapshot to disk, S3 or PostgreSQL
//
// Before a subcommand runs, the root command collects the compiled-in states
// plus any HCL files under --extra-states. The catalog itself is built on
// first use so that validate can report defects instead of failing early.
package commands
