//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

const (
	contentAPIPath  = "/wp-json/wp/v2"
	feedPath        = "/feed"
	publisherPrefix = "/dev/api"
)

// fakePost is the WordPress post shape served by the fake content API.
type fakePost struct {
	ID         int
	Slug       string
	Title      string
	Content    string
	Date       string
	Author     int
	Categories []int
	Tags       []int
}

// upstreamFake serves the WordPress content API and the publisher API
// from one httptest server. Paths are disjoint so a single server suffices.
type upstreamFake struct {
	server *httptest.Server

	mu             sync.Mutex
	posts          []fakePost
	users          map[int]string
	tags           map[int]string
	categories     map[int]string
	contentDown    bool
	publisherDown  bool
	account        map[string]any
	takenUsernames map[string]bool
	agreed         []string
	usernames      []string
	requestIDs     []string
}

func newUpstreamFake() *upstreamFake {
	f := &upstreamFake{}
	f.reset()
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))

	return f
}

func (f *upstreamFake) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.posts = nil
	f.users = map[int]string{}
	f.tags = map[int]string{}
	f.categories = map[int]string{}
	f.contentDown = false
	f.publisherDown = false
	f.account = map[string]any{
		"username":      "snapdev",
		"displayname":   "Snap Developer",
		"email":         "dev@example.com",
		"image":         "",
		"subscriptions": map[string]bool{"newsletter": false},
	}
	f.takenUsernames = map[string]bool{}
	f.agreed = nil
	f.usernames = nil
	f.requestIDs = nil
}

func (f *upstreamFake) close() {
	f.server.Close()
}

func (f *upstreamFake) contentURL() string {
	return f.server.URL + contentAPIPath
}

func (f *upstreamFake) feedURL() string {
	return f.server.URL + feedPath
}

func (f *upstreamFake) addPost(p fakePost) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p.ID == 0 {
		p.ID = len(f.posts) + 1
	}

	if p.Date == "" {
		p.Date = "2024-03-05T10:00:00"
	}

	f.posts = append(f.posts, p)
}

func (f *upstreamFake) addTag(id int, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tags[id] = name
}

func (f *upstreamFake) addCategory(id int, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.categories[id] = name
}

func (f *upstreamFake) addUser(id int, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.users[id] = name
}

func (f *upstreamFake) setContentDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.contentDown = down
}

func (f *upstreamFake) setPublisherDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.publisherDown = down
}

func (f *upstreamFake) takeUsername(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.takenUsernames[name] = true
}

func (f *upstreamFake) receivedRequestIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.requestIDs...)
}

func (f *upstreamFake) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id := r.Header.Get("X-Request-ID"); id != "" {
		f.requestIDs = append(f.requestIDs, id)
	}

	switch {
	case r.URL.Path == feedPath:
		f.serveFeed(w)
	case strings.HasPrefix(r.URL.Path, contentAPIPath):
		f.serveContent(w, r, strings.TrimPrefix(r.URL.Path, contentAPIPath))
	case strings.HasPrefix(r.URL.Path, publisherPrefix):
		f.servePublisher(w, r, strings.TrimPrefix(r.URL.Path, publisherPrefix))
	default:
		http.NotFound(w, r)
	}
}

func (f *upstreamFake) serveFeed(w http.ResponseWriter) {
	if f.contentDown {
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml")
	_, _ = fmt.Fprintf(w, `<?xml version="1.0"?><rss><channel><title>Ubuntu Blog</title>`+
		`<link>%s/2024/03/05/hello</link></channel></rss>`, f.server.URL)
}

func (f *upstreamFake) serveContent(w http.ResponseWriter, r *http.Request, path string) {
	if f.contentDown {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code":"unavailable","message":"maintenance"}`))

		return
	}

	q := r.URL.Query()

	switch {
	case path == "/posts":
		f.servePosts(w, q.Get("slug"), q.Get("tags"), q.Get("categories"), q.Get("exclude"))
	case path == "/categories":
		writeJSON(w, http.StatusOK, namedList(f.categories, nil))
	case strings.HasPrefix(path, "/categories/"):
		f.serveNamed(w, f.categories, strings.TrimPrefix(path, "/categories/"))
	case path == "/tags":
		f.serveTags(w, q.Get("include"), q.Get("search"))
	case strings.HasPrefix(path, "/users/"):
		id, _ := strconv.Atoi(strings.TrimPrefix(path, "/users/"))
		name, ok := f.users[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"code": "rest_user_invalid_id", "message": "Invalid user ID."})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"id": id, "name": name, "slug": strings.ToLower(name),
			"avatar_urls": map[string]string{"96": "https://avatars.example/" + strconv.Itoa(id)},
		})
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"code": "rest_no_route", "message": "No route"})
	}
}

func (f *upstreamFake) servePosts(w http.ResponseWriter, slug, tags, categories, exclude string) {
	out := []map[string]any{}

	for _, p := range f.posts {
		if slug != "" && p.Slug != slug {
			continue
		}

		if tags != "" && !intersects(p.Tags, tags) {
			continue
		}

		if categories != "" && !intersects(p.Categories, categories) {
			continue
		}

		if exclude != "" && strconv.Itoa(p.ID) == exclude {
			continue
		}

		out = append(out, map[string]any{
			"id":         p.ID,
			"slug":       p.Slug,
			"date":       p.Date,
			"link":       f.server.URL + "/2024/03/05/" + p.Slug,
			"title":      map[string]string{"rendered": p.Title},
			"content":    map[string]string{"rendered": p.Content},
			"excerpt":    map[string]string{"rendered": "<p>" + p.Title + " [&hellip;]</p>"},
			"author":     p.Author,
			"categories": p.Categories,
			"tags":       p.Tags,
		})
	}

	w.Header().Set("X-WP-TotalPages", "1")
	writeJSON(w, http.StatusOK, out)
}

func (f *upstreamFake) serveNamed(w http.ResponseWriter, set map[int]string, rawID string) {
	id, _ := strconv.Atoi(rawID)

	name, ok := set[id]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"code": "rest_term_invalid", "message": "Term does not exist."})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "name": name, "slug": strings.ToLower(name)})
}

func (f *upstreamFake) serveTags(w http.ResponseWriter, include, search string) {
	if include != "" {
		writeJSON(w, http.StatusOK, namedList(f.tags, func(id int, _ string) bool {
			return intersects([]int{id}, include)
		}))

		return
	}

	writeJSON(w, http.StatusOK, namedList(f.tags, func(_ int, name string) bool {
		return strings.Contains(name, search)
	}))
}

func (f *upstreamFake) servePublisher(w http.ResponseWriter, r *http.Request, path string) {
	if f.publisherDown {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	auth := r.Header.Get("Authorization")

	switch {
	case path == "/account" && r.Method == http.MethodGet:
		if auth == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"error_list": []map[string]string{{"code": "macaroon-needs-refresh", "message": "authentication required"}},
			})

			return
		}

		writeJSON(w, http.StatusOK, f.account)
	case path == "/account" && r.Method == http.MethodPatch:
		var body struct {
			ShortNamespace string `json:"short_namespace"`
		}

		_ = json.NewDecoder(r.Body).Decode(&body)

		if f.takenUsernames[body.ShortNamespace] {
			writeJSON(w, http.StatusConflict, map[string]any{
				"error_list": []map[string]string{{"code": "already_taken", "message": "The username is already taken"}},
			})

			return
		}

		f.usernames = append(f.usernames, body.ShortNamespace)
		w.WriteHeader(http.StatusNoContent)
	case path == "/agreement/" && r.Method == http.MethodPost:
		f.agreed = append(f.agreed, auth)
		writeJSON(w, http.StatusOK, map[string]bool{"latest_tos_accepted": true})
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error_list": []map[string]string{{"code": "not_found", "message": "not found"}},
		})
	}
}

func namedList(set map[int]string, keep func(int, string) bool) []map[string]any {
	out := []map[string]any{}

	for id, name := range set {
		if keep != nil && !keep(id, name) {
			continue
		}

		out = append(out, map[string]any{"id": id, "name": name, "slug": strings.ToLower(name)})
	}

	return out
}

func intersects(ids []int, csv string) bool {
	for _, part := range strings.Split(csv, ",") {
		want, err := strconv.Atoi(part)
		if err != nil {
			continue
		}

		for _, id := range ids {
			if id == want {
				return true
			}
		}
	}

	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
