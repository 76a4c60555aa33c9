// Package generator implements the generator side of the protocol: a
// single-threaded loop that reads one command per line and writes one
// response per line until it receives Shutdown.
package generator
