package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/rsvp/configs"
	"github.com/reusee/rsvp/modes"
)

func TestProxyURL(t *testing.T) {
	scope := dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)

	scope.Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
	) {
		if addr != "" {
			t.Fatalf("tests never use a proxy, got %v", addr)
		}
		u, err := getURL()
		if err != nil || u != nil {
			t.Fatalf("got %v %v", u, err)
		}
	})

	scope.Fork(
		func() ProxyAddr {
			return "socks://127.0.0.1:1080"
		},
	).Call(func(
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %v", u.Scheme)
		}
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
	})

	scope.Fork(
		func() ProxyAddr {
			return "http://127.0.0.1:3128"
		},
	).Call(func(
		getURL GetProxyURL,
		client HTTPClient,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if !isHTTPProxy(u) {
			t.Fatalf("got %v", u)
		}
		if client.Transport == nil {
			t.Fatal("no transport")
		}
	})
}
