package cmds

import (
	"fmt"
	"os"
	"strings"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs the global executor and exits with usage on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}

func Var[T any](name string, desc ...string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}).Desc(strings.Join(desc, " ")))
	return &value
}

func Switch(name string, desc ...string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}
