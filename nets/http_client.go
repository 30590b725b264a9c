package nets

import (
	"net/http"
	"net/url"
	"time"
)

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	getURL GetProxyURL,
	isLocalAddr IsLocalAddr,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
			Proxy: func(req *http.Request) (*url.URL, error) {
				u, err := getURL()
				if err != nil || u == nil || !isHTTPProxy(u) {
					return nil, err
				}
				if isLocal, err := isLocalAddr(req.URL.Host); err != nil || isLocal {
					return nil, err
				}
				return u, nil
			},
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: time.Minute,
	}
}
