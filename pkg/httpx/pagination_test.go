package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/scoreboard/pkg/httpx"
)

func TestSetPaginationHeaders_Counts(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "http://example.com/api/scores?page=2", http.NoBody)

	httpx.SetPaginationHeaders(w, r, httpx.Page{Number: 2, Items: 50, TotalPages: 3, TotalCount: 120})

	want := map[string]string{
		"Current-Page": "2",
		"Page-Items":   "50",
		"Total-Pages":  "3",
		"Total-Count":  "120",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Errorf("%s: got %q, want %q", k, got, v)
		}
	}
}

func TestSetPaginationHeaders_Link(t *testing.T) {
	tests := []struct {
		name     string
		page     httpx.Page
		wantRels []string
	}{
		{"single page", httpx.Page{Number: 1, TotalPages: 1}, []string{"first", "last"}},
		{"first of many", httpx.Page{Number: 1, TotalPages: 3}, []string{"first", "next", "last"}},
		{"middle", httpx.Page{Number: 2, TotalPages: 3}, []string{"first", "prev", "next", "last"}},
		{"last", httpx.Page{Number: 3, TotalPages: 3}, []string{"first", "prev", "last"}},
		{"past the end", httpx.Page{Number: 9, TotalPages: 3}, []string{"first", "prev", "last"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "http://example.com/api/scores", http.NoBody)
			httpx.SetPaginationHeaders(w, r, tt.page)

			parts := strings.Split(w.Header().Get("Link"), ", ")
			if len(parts) != len(tt.wantRels) {
				t.Fatalf("got %d links (%q), want %d", len(parts), w.Header().Get("Link"), len(tt.wantRels))
			}
			for i, rel := range tt.wantRels {
				if !strings.HasSuffix(parts[i], `rel="`+rel+`"`) {
					t.Errorf("link %d: got %q, want rel %q", i, parts[i], rel)
				}
			}
		})
	}
}

func TestSetPaginationHeaders_LinkKeepsFilters(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "http://example.com/api/scores?q%5Bname_eq%5D=Edo&page=1", http.NoBody)

	httpx.SetPaginationHeaders(w, r, httpx.Page{Number: 1, TotalPages: 2})

	link := w.Header().Get("Link")
	want := `<http://example.com/api/scores?page=2&q%5Bname_eq%5D=Edo>; rel="next"`
	if !strings.Contains(link, want) {
		t.Errorf("Link %q does not contain %q", link, want)
	}
}
