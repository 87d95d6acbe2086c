// Package apitest provides an in-memory fake of the notification backend.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/julienschmidt/httprouter"

	"github.com/julianstephens/teetime/internal/models"
)

// Backend serves the REST endpoints from in-memory state.
type Backend struct {
	mu sync.Mutex

	Configs     map[string]models.NotificationConfiguration // by email
	Links       map[string]string                           // guid -> email
	Registered  map[string]bool
	RecentTimes []models.TeeTime

	// Fail forces the given path to answer with FailStatus.
	Fail       map[string]bool
	FailStatus int

	Updates    []models.UpdateUserConfigRequest
	LinkEmails []string
	Paused     int
	Resumed    int
	Calls      map[string]int

	server *httptest.Server
}

// NewBackend starts a fake backend. It is closed with t.Cleanup by callers.
func NewBackend() *Backend {
	b := &Backend{
		Configs:    map[string]models.NotificationConfiguration{},
		Links:      map[string]string{},
		Registered: map[string]bool{},
		Fail:       map[string]bool{},
		FailStatus: http.StatusInternalServerError,
		Calls:      map[string]int{},
	}

	router := httprouter.New()
	router.GET("/getRecentTimes", b.handle(b.recentTimes))
	router.POST("/register", b.handle(b.register))
	router.POST("/createOneTimeLink", b.handle(b.createLink))
	router.POST("/validateOneTimeLink", b.handle(b.validateLink))
	router.POST("/getUserConfig", b.handle(b.getUserConfig))
	router.POST("/updateUserConfig", b.handle(b.updateUserConfig))
	router.POST("/pause", b.handle(b.pause))
	router.POST("/resume", b.handle(b.resume))

	b.server = httptest.NewServer(router)
	return b
}

func (b *Backend) URL() string { return b.server.URL }

func (b *Backend) Close() { b.server.Close() }

// CallCount returns how many requests reached path.
func (b *Backend) CallCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Calls[path]
}

// LastUpdate returns the most recent /updateUserConfig body.
func (b *Backend) LastUpdate() (models.UpdateUserConfigRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.Updates) == 0 {
		return models.UpdateUserConfigRequest{}, false
	}
	return b.Updates[len(b.Updates)-1], true
}

// SetConfig stores cfg for email.
func (b *Backend) SetConfig(email string, cfg models.NotificationConfiguration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Configs[email] = cfg.Clone()
}

// Config returns what is stored for email.
func (b *Backend) Config(email string) (models.NotificationConfiguration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	cfg, ok := b.Configs[email]
	return cfg.Clone(), ok
}

// AddLink registers a one-time link token for email.
func (b *Backend) AddLink(guid, email string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Links[guid] = email
}

// SetRecentTimes replaces the /getRecentTimes result.
func (b *Backend) SetRecentTimes(times []models.TeeTime) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.RecentTimes = append([]models.TeeTime(nil), times...)
}

func (b *Backend) IsRegistered(email string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Registered[email]
}

// LinkRequests returns every email a link was requested for.
func (b *Backend) LinkRequests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.LinkEmails...)
}

// PauseCounts returns how many pause and resume calls were received.
func (b *Backend) PauseCounts() (paused, resumed int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Paused, b.Resumed
}

// SetFail toggles a forced failure on path.
func (b *Backend) SetFail(path string, fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Fail[path] = fail
}

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func (b *Backend) handle(fn handlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.Calls[r.URL.Path]++
		if b.Fail[r.URL.Path] {
			http.Error(w, "forced failure", b.FailStatus)
			return
		}
		fn(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readEmail(r *http.Request) (string, bool) {
	var req models.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		return "", false
	}
	return req.Email, true
}

func (b *Backend) recentTimes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.RecentTimesResponse{Result: b.RecentTimes})
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	email, ok := readEmail(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.StatusResponse{Message: "email is required"})
		return
	}
	if b.Registered[email] {
		writeJSON(w, http.StatusOK, models.StatusResponse{Success: false, Message: "Email already registered"})
		return
	}
	b.Registered[email] = true
	writeJSON(w, http.StatusOK, models.StatusResponse{Success: true, Message: "Registered"})
}

func (b *Backend) createLink(w http.ResponseWriter, r *http.Request) {
	email, ok := readEmail(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.StatusResponse{Message: "email is required"})
		return
	}
	b.LinkEmails = append(b.LinkEmails, email)
	writeJSON(w, http.StatusOK, models.StatusResponse{Success: true})
}

func (b *Backend) validateLink(w http.ResponseWriter, r *http.Request) {
	var req models.GuidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ValidateLinkResponse{ErrorMessage: "bad request"})
		return
	}
	email, ok := b.Links[req.GUID]
	if !ok {
		writeJSON(w, http.StatusOK, models.ValidateLinkResponse{ErrorMessage: "One time link doesn't exist"})
		return
	}
	writeJSON(w, http.StatusOK, models.ValidateLinkResponse{Email: email})
}

func (b *Backend) getUserConfig(w http.ResponseWriter, r *http.Request) {
	email, ok := readEmail(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, models.UserConfigResponse{})
		return
	}
	cfg, ok := b.Configs[email]
	if !ok {
		writeJSON(w, http.StatusOK, models.UserConfigResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, models.UserConfigResponse{Success: true, Result: cfg.Clone()})
}

func (b *Backend) updateUserConfig(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	b.Updates = append(b.Updates, req)
	b.Configs[req.Email] = req.NotificationConfiguration.Clone()
	w.WriteHeader(http.StatusOK)
}

func (b *Backend) pause(w http.ResponseWriter, _ *http.Request) {
	b.Paused++
	w.WriteHeader(http.StatusOK)
}

func (b *Backend) resume(w http.ResponseWriter, _ *http.Request) {
	b.Resumed++
	w.WriteHeader(http.StatusOK)
}
