// Package subprocess provides the subprocess-based transport to the generator.
//
// This package implements the Transport interface by spawning the generator
// binary as a child process and exchanging lines over its stdin and stdout.
// The child handle and both pipe ends are owned together by one Transport
// for the lifetime of one controller run.
package subprocess
