package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/rsvp/configs"
	"github.com/reusee/rsvp/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, want := range map[string]bool{
			"127.0.0.1:10000": true,
			"[::1]:80":        true,
			"10.1.2.3":        true,
			"192.168.0.1:443": true,
			"192.0.2.1:80":    false,
			"8.8.8.8":         false,
		} {
			got, err := isLocalAddr(addr)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("%s: got %v", addr, got)
			}
		}
	})
}
