package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
wpm?: int
settings_file?: string
back_words?: int
pacing?: {
	punctuation_pause_ms?: int
}
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/a.cue"}, testSchema)

	var wpm int
	if err := loader.AssignFirst("wpm", &wpm); err != nil {
		t.Fatal(err)
	}
	if wpm != 350 {
		t.Fatalf("got %v", wpm)
	}

	var pause int
	if err := loader.AssignFirst("pacing.punctuation_pause_ms", &pause); err != nil {
		t.Fatal(err)
	}
	if pause != 80 {
		t.Fatalf("got %v", pause)
	}

	err := loader.AssignFirst("back_words", &wpm)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/a.cue",
		"testdata/b.cue",
	}, testSchema)

	var rates []int
	for value, err := range loader.IterCueValues("wpm") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		rates = append(rates, n)
	}
	if str := fmt.Sprintf("%v", rates); str != "[350 500]" {
		t.Fatalf("got %s", str)
	}

	if n := First[int](loader, "back_words"); n != 5 {
		t.Fatalf("got %v", n)
	}
	if s := First[string](loader, "missing"); s != "" {
		t.Fatalf("got %q", s)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var n int
	err := loader.AssignFirst("speed", &n)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/nope.cue"}, "")
	var n int
	if err := loader.AssignFirst("wpm", &n); err == nil || errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

type testBackWords int

func (testBackWords) ConfigExpr() string {
	return "back_words"
}

func TestLookup(t *testing.T) {
	loader := NewLoader([]string{"testdata/a.cue", "testdata/b.cue"}, testSchema)
	if n := Lookup[testBackWords](loader); n != 5 {
		t.Fatalf("got %v", n)
	}
}
