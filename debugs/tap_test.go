package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func TestExec(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		exec Exec,
	) {
		calls := 0
		ret, err := exec(t.Context(), "test.star", `
total = len(tokens)
current = frame["Center"]
def run():
    for _ in range(3):
        back()
run()
`, map[string]any{
			"tokens": []string{"a", "b", "c"},
			"frame": struct {
				Before, Center, After string
			}{"rea", "d", "ing"},
			"back": func() {
				calls++
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		if ok, err := starlark.Equal(ret["total"], starlark.MakeInt(3)); err != nil || !ok {
			t.Fatalf("got %v", ret["total"])
		}
		if ok, err := starlark.Equal(ret["current"], starlark.String("d")); err != nil || !ok {
			t.Fatalf("got %v", ret["current"])
		}
		if calls != 3 {
			t.Fatalf("got %v", calls)
		}
	})
}

func TestExecError(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		exec Exec,
	) {
		if _, err := exec(t.Context(), "bad.star", "x = undefined_name", nil); err == nil {
			t.Fatal("should error")
		}
	})
}
