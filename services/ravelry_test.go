package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testClient(t *testing.T, handler http.Handler) *RavelryClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewRavelryClient("user", "pass")
	c.baseURL = server.URL
	return c
}

func ravelryStub(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/patterns/search.json", func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if strings.Contains(r.URL.Query().Get("query"), "no-such") {
			fmt.Fprint(w, `{"patterns": []}`)
			return
		}
		fmt.Fprint(w, `{"patterns": [{"id": 424242}]}`)
	})
	mux.HandleFunc("/patterns/424242.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"pattern": {
			"id": 424242,
			"name": "Ranger Cardigan",
			"permalink": "ranger-cardigan",
			"designer": {"name": "Jared Flood"},
			"craft": {"name": "Knitting"},
			"pattern_categories": [{"name": "Cardigan"}],
			"yardage": 1200,
			"free": false,
			"photos": [{"small_url": "https://img/s.jpg", "medium_url": "https://img/m.jpg"}]
		}}`)
	})
	return mux
}

func TestLookupPattern(t *testing.T) {
	c := testClient(t, ravelryStub(t))

	imported, err := c.LookupPattern(context.Background(), "https://www.ravelry.com/patterns/library/ranger-cardigan")
	if err != nil {
		t.Fatalf("LookupPattern: %v", err)
	}
	if imported.Name != "Ranger Cardigan" {
		t.Errorf("name = %q", imported.Name)
	}
	if imported.Designer != "Jared Flood" {
		t.Errorf("designer = %q", imported.Designer)
	}
	if imported.SourceURL != "https://www.ravelry.com/patterns/library/ranger-cardigan" {
		t.Errorf("source_url = %q", imported.SourceURL)
	}
	if imported.Metadata["craft"] != "Knitting" {
		t.Errorf("metadata craft = %v", imported.Metadata["craft"])
	}
	if imported.Metadata["ravelry_id"] != 424242 {
		t.Errorf("metadata ravelry_id = %v", imported.Metadata["ravelry_id"])
	}
}

func TestLookupPatternNotConfigured(t *testing.T) {
	c := NewRavelryClient("", "")

	_, err := c.LookupPattern(context.Background(), "https://www.ravelry.com/patterns/library/anything")
	if !errors.Is(err, ErrCatalogNotConfigured) {
		t.Errorf("err = %v, want ErrCatalogNotConfigured", err)
	}
}

func TestLookupPatternInvalidURL(t *testing.T) {
	c := testClient(t, ravelryStub(t))

	for _, u := range []string{
		"https://example.com/not-ravelry",
		"https://www.ravelry.com/designers/jared-flood",
		"not a url at all",
	} {
		if _, err := c.LookupPattern(context.Background(), u); !errors.Is(err, ErrInvalidPatternURL) {
			t.Errorf("LookupPattern(%q) err = %v, want ErrInvalidPatternURL", u, err)
		}
	}
}

func TestLookupPatternNotFound(t *testing.T) {
	c := testClient(t, ravelryStub(t))

	_, err := c.LookupPattern(context.Background(), "https://www.ravelry.com/patterns/library/no-such-pattern")
	if !errors.Is(err, ErrPatternNotFound) {
		t.Errorf("err = %v, want ErrPatternNotFound", err)
	}
}

func TestLookupPatternBadCredentials(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.LookupPattern(context.Background(), "https://www.ravelry.com/patterns/library/ranger-cardigan")
	if !errors.Is(err, ErrBadCredentials) {
		t.Errorf("err = %v, want ErrBadCredentials", err)
	}
}

func TestDesignerNameFallsBackToPatternAuthor(t *testing.T) {
	p := &ravelryPattern{
		PatternAuthor: &struct {
			Name string `json:"name"`
		}{Name: "Author Name"},
	}
	if got := p.designerName(); got != "Author Name" {
		t.Errorf("designerName() = %q", got)
	}
}
