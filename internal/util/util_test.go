package util

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.txt")
	if err := WriteFile(path, []byte("hi")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "hi" {
		t.Errorf("read back %q, %v", got, err)
	}
}

func TestGetBytes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/gone" {
			w.WriteHeader(http.StatusGone)
			return
		}
		w.Write([]byte("payload"))
	}))
	defer ts.Close()

	b, err := GetBytes(context.Background(), ts.URL+"/ok")
	if err != nil || string(b) != "payload" {
		t.Errorf("GetBytes = %q, %v", b, err)
	}
	if _, err := GetBytes(context.Background(), ts.URL+"/gone"); !errors.Is(err, ErrStatus) {
		t.Errorf("status error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := GetBytes(ctx, ts.URL+"/ok"); err == nil {
		t.Error("cancelled context should fail")
	}
}
