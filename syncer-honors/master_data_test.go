package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func newTestMasterData(primaryUrl string, fallbackUrl string) *MasterData {
	masterData := NewMasterData(initTestConfig(), initTestServer())
	masterData.RawUrlTemplate = primaryUrl + "/{repo}/{file}"
	masterData.CdnUrlTemplate = fallbackUrl + "/{repo}/{file}"
	return masterData
}

func TestFetch(t *testing.T) {
	t.Run("Fetches from the primary source", func(t *testing.T) {
		var fallbackHits atomic.Int32
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/haruki-sekai-master/honors.json" {
				t.Errorf("Unexpected path: %s", r.URL.Path)
			}
			w.Write([]byte(`[{"id": 1}, {"id": 2}]`))
		}))
		defer primary.Close()
		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fallbackHits.Add(1)
			w.Write([]byte(`[]`))
		}))
		defer fallback.Close()

		records := newTestMasterData(primary.URL, fallback.URL).Fetch(HONORS_FILE)

		if len(records) != 2 {
			t.Errorf("Expected 2 records, got %d", len(records))
		}
		if fallbackHits.Load() != 0 {
			t.Errorf("Expected the fallback to not be called, got %d call(s)", fallbackHits.Load())
		}
	})

	t.Run("Falls back on a transport error", func(t *testing.T) {
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		primary.Close() // Closed upfront to simulate a connection failure
		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/haruki-sekai-master/honors.json" {
				t.Errorf("Unexpected path: %s", r.URL.Path)
			}
			w.Write([]byte(`[{"id": 1}]`))
		}))
		defer fallback.Close()

		records := newTestMasterData(primary.URL, fallback.URL).Fetch(HONORS_FILE)

		if len(records) != 1 {
			t.Errorf("Expected 1 record, got %d", len(records))
		}
	})

	t.Run("Falls back on a non-success status", func(t *testing.T) {
		var primaryHits atomic.Int32
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			primaryHits.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer primary.Close()
		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": 1}]`))
		}))
		defer fallback.Close()

		records := newTestMasterData(primary.URL, fallback.URL).Fetch(HONORS_FILE)

		if len(records) != 1 {
			t.Errorf("Expected 1 record, got %d", len(records))
		}
		if primaryHits.Load() != 1 {
			t.Errorf("Expected a single primary attempt, got %d", primaryHits.Load())
		}
	})

	t.Run("Falls back on malformed JSON without retrying the primary", func(t *testing.T) {
		var primaryHits atomic.Int32
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			primaryHits.Add(1)
			w.Write([]byte(`<html>rate limited</html>`))
		}))
		defer primary.Close()
		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": 1}, {"id": 2}, {"id": 3}]`))
		}))
		defer fallback.Close()

		records := newTestMasterData(primary.URL, fallback.URL).Fetch(BONDS_HONORS_FILE)

		if len(records) != 3 {
			t.Errorf("Expected 3 records, got %d", len(records))
		}
		if primaryHits.Load() != 1 {
			t.Errorf("Expected a single primary attempt, got %d", primaryHits.Load())
		}
	})

	t.Run("Caps the error body from a failed source", func(t *testing.T) {
		source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(strings.Repeat("x", 10*MAX_ERROR_BODY_BYTES)))
		}))
		defer source.Close()
		masterData := newTestMasterData(source.URL, source.URL)

		_, err := masterData.fetchUrl(source.URL + "/haruki-sekai-master/honors.json")

		if err == nil {
			t.Fatal("Expected an error")
		}
		if len(err.Error()) > MAX_ERROR_BODY_BYTES+100 {
			t.Errorf("Expected the error body to be capped, got %d bytes", len(err.Error()))
		}
	})

	t.Run("Returns nil when all sources fail", func(t *testing.T) {
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer primary.Close()
		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not": "an array"`))
		}))
		defer fallback.Close()

		records := newTestMasterData(primary.URL, fallback.URL).Fetch(HONOR_GROUPS_FILE)

		if records != nil {
			t.Errorf("Expected nil, got %d record(s)", len(records))
		}
	})
}
