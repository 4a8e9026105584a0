// Package nav is the navigation capability handed to request handlers instead of
// letting them write redirect headers on their own.
package nav

import (
	"net/http"
	"net/url"
	"strings"
)

// SearchResultsPath is where site-wide search results are rendered.
const SearchResultsPath = "/buscar"

type Navigator interface {
	Navigate(path string)
	CurrentPath() string
}

// SearchPath builds the search results location for q. Blank input yields the bare results page.
func SearchPath(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return SearchResultsPath
	}
	return SearchResultsPath + "?" + url.Values{"q": {q}}.Encode()
}

// SubmitSearch navigates to the results for q. Nothing happens for blank input.
func SubmitSearch(n Navigator, q string) bool {
	if strings.TrimSpace(q) == "" {
		return false
	}
	n.Navigate(SearchPath(q))
	return true
}

// HTTPNavigator answers a request with a 303 redirect.
type HTTPNavigator struct {
	w          http.ResponseWriter
	r          *http.Request
	current    string
	redirected bool
}

func NewHTTPNavigator(w http.ResponseWriter, r *http.Request) *HTTPNavigator {
	return &HTTPNavigator{w: w, r: r, current: r.URL.RequestURI()}
}

// Navigate writes the redirect. Headers can only be sent once, so later calls are ignored.
func (n *HTTPNavigator) Navigate(path string) {
	if n.redirected {
		return
	}
	http.Redirect(n.w, n.r, path, http.StatusSeeOther)
	n.current = path
	n.redirected = true
}

func (n *HTTPNavigator) CurrentPath() string { return n.current }

// Recorder keeps every navigation in memory.
type Recorder struct {
	Path    string
	History []string
}

func NewRecorder(start string) *Recorder {
	return &Recorder{Path: start}
}

func (r *Recorder) Navigate(path string) {
	r.History = append(r.History, path)
	r.Path = path
}

func (r *Recorder) CurrentPath() string { return r.Path }
