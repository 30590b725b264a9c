package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	text, err := Text("hello world")(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if text != "hello world" {
		t.Fatalf("got %q", text)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	if err := os.WriteFile(path, []byte("Call me Ishmael."), 0644); err != nil {
		t.Fatal(err)
	}
	text, err := File(path)(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if text != "Call me Ishmael." {
		t.Fatalf("got %q", text)
	}
	if _, err := File(path + ".missing")(context.Background()); !os.IsNotExist(err) {
		t.Fatalf("got %v", err)
	}
}

func TestReader(t *testing.T) {
	text, err := Reader(strings.NewReader("a b c"))(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if text != "a b c" {
		t.Fatalf("got %q", text)
	}
}

func TestURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("remote words"))
	}))
	defer server.Close()

	text, err := URL(server.Client(), server.URL+"/text")(t.Context())
	if err != nil {
		t.Fatal(err)
	}
	if text != "remote words" {
		t.Fatalf("got %q", text)
	}

	_, err = URL(server.Client(), server.URL+"/missing")(t.Context())
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("got %v", err)
	}
}
