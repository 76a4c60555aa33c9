//go:build integration

package integration

import (
	"errors"
	"testing"

	randctl "github.com/wagiedev/randctl-go"
)

// skipIfGeneratorNotInstalled skips the test if the error indicates randgen is not found.
func skipIfGeneratorNotInstalled(t *testing.T, err error) {
	t.Helper()

	if _, ok := errors.AsType[*randctl.GeneratorNotFoundError](err); ok {
		t.Skip("randgen not installed")
	}
}
