package httpx

import (
	"net/http"
	"strconv"
)

const DefaultPerPage = 15

type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type Page struct {
	Data  interface{} `json:"data"`
	Links PageLinks   `json:"links"`
	Meta  PageMeta    `json:"meta"`
}

// PageParams reads page and per_page from the query string, falling back
// to page 1 and DefaultPerPage.
func PageParams(r *http.Request) (page, perPage int) {
	page, perPage = 1, DefaultPerPage
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := r.URL.Query().Get("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			perPage = n
		}
	}
	return page, perPage
}

// NewPage assembles the paginated envelope around data.
func NewPage(r *http.Request, data interface{}, page, perPage int, total int64) Page {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	pageURL := func(p int) string {
		u := *r.URL
		q := u.Query()
		q.Set("page", strconv.Itoa(p))
		q.Set("per_page", strconv.Itoa(perPage))
		u.RawQuery = q.Encode()
		return u.String()
	}

	links := PageLinks{First: pageURL(1), Last: pageURL(lastPage)}
	if page > 1 {
		prev := pageURL(page - 1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(page + 1)
		links.Next = &next
	}

	return Page{
		Data:  data,
		Links: links,
		Meta: PageMeta{
			CurrentPage: page,
			LastPage:    lastPage,
			PerPage:     perPage,
			Total:       total,
		},
	}
}
