// Package commands wires the coinfmt subcommands: one per formatting
// operation, sharing the env-driven defaults loaded by the root command.
package commands
