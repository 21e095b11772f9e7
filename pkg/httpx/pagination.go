package httpx

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Pagination response header names.
const (
	HeaderCurrentPage = "Current-Page"
	HeaderPageItems   = "Page-Items"
	HeaderTotalPages  = "Total-Pages"
	HeaderTotalCount  = "Total-Count"
)

// Page describes the page being served.
type Page struct {
	Number     int // 1-indexed
	Items      int // rows on this page
	TotalPages int
	TotalCount int
}

// SetPaginationHeaders writes the pagination headers and an RFC 8288 Link
// header with first, prev, next and last relations. prev and next are
// omitted at the edges. Link targets reuse the request URL with only the
// page parameter replaced. Call before writing the status code.
func SetPaginationHeaders(w http.ResponseWriter, r *http.Request, p Page) {
	h := w.Header()
	h.Set(HeaderCurrentPage, strconv.Itoa(p.Number))
	h.Set(HeaderPageItems, strconv.Itoa(p.Items))
	h.Set(HeaderTotalPages, strconv.Itoa(p.TotalPages))
	h.Set(HeaderTotalCount, strconv.Itoa(p.TotalCount))

	last := max(p.TotalPages, 1)
	links := []string{pageLink(r, 1, "first")}
	if p.Number > 1 {
		links = append(links, pageLink(r, min(p.Number-1, last), "prev"))
	}
	if p.Number < last {
		links = append(links, pageLink(r, p.Number+1, "next"))
	}
	links = append(links, pageLink(r, last, "last"))
	h.Set("Link", strings.Join(links, ", "))
}

func pageLink(r *http.Request, page int, rel string) string {
	u := url.URL{
		Scheme: "http",
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	if r.TLS != nil {
		u.Scheme = "https"
	}
	q := r.URL.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return fmt.Sprintf("<%s>; rel=%q", u.String(), rel)
}
