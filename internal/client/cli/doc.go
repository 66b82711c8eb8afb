// Package cli provides the interactive Anuncia command-line client.
//
// It wires configuration, the local session database, the backend API
// client, and an interactive REPL whose commands move between the same
// views the web frontend has. Access to gated views goes through the
// route guard, and listing creation through the plan quota gate.
//
// The REPL is started via App.Run(ctx), which blocks until the user
// exits.
package cli
