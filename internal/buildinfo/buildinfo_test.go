package buildinfo_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/seedsplit/internal/buildinfo"
)

func TestString(t *testing.T) {
	c := qt.New(t)
	c.Assert(buildinfo.String(), qt.Equals, "seedsplit dev (commit unknown, built unknown)")
}
