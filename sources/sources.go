// Package sources loads the text to read.
package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Source produces the full text once.
type Source func(ctx context.Context) (string, error)

// MaxSize bounds what is read from any source.
const MaxSize = 32 << 20

func Text(text string) Source {
	return func(context.Context) (string, error) {
		return text, nil
	}
}

func File(path string) Source {
	return func(ctx context.Context) (string, error) {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		return readAll(f)
	}
}

func Reader(r io.Reader) Source {
	return func(ctx context.Context) (string, error) {
		return readAll(r)
	}
}

func URL(client *http.Client, url string) Source {
	return func(ctx context.Context) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", err
		}
		req.Header.Set("Accept", "text/plain, */*;q=0.5")
		resp, err := client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", fmt.Errorf("get %s: %s", url, resp.Status)
		}
		return readAll(resp.Body)
	}
}

func readAll(r io.Reader) (string, error) {
	buf := new(strings.Builder)
	n, err := io.Copy(buf, io.LimitReader(r, MaxSize+1))
	if err != nil {
		return "", err
	}
	if n > MaxSize {
		return "", fmt.Errorf("text larger than %d bytes", MaxSize)
	}
	return buf.String(), nil
}
