// Package commands defines the avana CLI.
//
// Commands
//
//   - extract [file]   Extract, group and flag addresses from pasted text
//   - serve            Run the SMTP intake for forwarded mail threads
//   - keywords         Manage named keyword profiles
//
// Configuration is loaded once in the root command; every subcommand builds
// its own dependency container from it.
package commands
