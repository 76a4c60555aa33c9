// Package errors defines error types for the random number controller.
//
// Every failure the controller can report implements ControllerError, so a
// caller that only cares whether the run failed can check for the umbrella
// interface while callers that need detail can use errors.Is, errors.As or
// errors.AsType on the concrete types.
package errors
