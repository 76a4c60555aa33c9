// Package protocol defines the line-oriented text protocol spoken between
// the controller and the generator.
//
// Each command and each response is a single newline-terminated line.
// There are no request IDs or framing beyond the newline: the controller
// reads exactly one response for every command it sends (except Shutdown,
// which has none) before it sends the next one.
//
//	controller -> generator   Hi
//	generator  -> controller  Hi
//	controller -> generator   GetRandom
//	generator  -> controller  -4611686018427387904
//	controller -> generator   Shutdown
package protocol
