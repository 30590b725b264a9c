package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is mixed into the scope of every binary.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

// T is nil outside tests; providers that log through t must check it.
func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
