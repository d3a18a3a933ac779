// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, and local storage
// bootstrapping into a single process lifecycle.
package client
