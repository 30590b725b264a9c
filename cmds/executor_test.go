package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var wpm int
	executor.Define("-fast", Func(func() {
		wpm = 600
	}))
	executor.Define("-wpm", Func(func(i int) {
		wpm = i
	}))

	if err := executor.Execute([]string{"-fast"}); err != nil {
		t.Fatal(err)
	}
	if wpm != 600 {
		t.Fatalf("got %v", wpm)
	}

	if err := executor.Execute([]string{"-wpm", "250"}); err != nil {
		t.Fatal(err)
	}
	if wpm != 250 {
		t.Fatalf("got %v", wpm)
	}

	err := executor.Execute([]string{"foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-wpm", "fast"})
	if err == nil || !strings.Contains(err.Error(), "convert fast to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-wpm"})
	if err == nil || !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	if err := executor.Execute([]string{"foo", "42", "bar"}); err != nil {
		t.Fatal(err)
	}
	if n != 42 || s != "bar" {
		t.Fatalf("got %v %q", n, s)
	}

	if err := executor.Execute([]string{"foo"}); err != nil {
		t.Fatal(err)
	}
	if n != 0 || s != "" {
		t.Fatalf("got %v %q", n, s)
	}
}

func TestDuplicatedCommand(t *testing.T) {
	executor := NewExecutor()
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	executor.Define("help", Func(func() {}))
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.output = buf
	executor.Define("-wpm", Func(func(int) {}).Desc("words per minute"))
	executor.PrintUsage()
	out := buf.String()
	if !strings.Contains(out, "-wpm <int>") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "words per minute") {
		t.Fatalf("got %s", out)
	}
	if strings.Count(out, "print this usage") != 1 {
		t.Fatalf("aliases should be listed once: %s", out)
	}
}
