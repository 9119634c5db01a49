// Package testutil provides a mock Home Assistant REST server for tests.
// It serves the subset of /api/ endpoints the client talks to, checks the
// bearer token, and records service calls for verification.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/hausnet/hass-go/models"
)

// ServiceCall records one POST /api/services/<domain>/<service> request.
type ServiceCall struct {
	Domain  string
	Service string
	Data    map[string]interface{}
}

// MockHAServer simulates a Home Assistant REST API.
type MockHAServer struct {
	server *httptest.Server
	token  string

	mu           sync.RWMutex
	config       models.Config
	states       map[string]models.State
	logbook      []models.LogbookEntry
	errorLog     string
	serviceCalls []ServiceCall
}

// NewMockHAServer starts a mock server that accepts the given bearer token.
// Callers must Close it when done.
func NewMockHAServer(token string) *MockHAServer {
	s := &MockHAServer{
		token:  token,
		states: make(map[string]models.State),
		config: models.Config{
			Components:   []string{"homeassistant", "api", "history"},
			ConfigDir:    "/config",
			LocationName: "Home",
			TimeZone:     "UTC",
			UnitSystem: models.UnitSystem{
				Length:      "km",
				Mass:        "g",
				Temperature: "°C",
				Volume:      "L",
			},
			Version: "2024.6.1",
		},
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// URL returns the base URL of the mock server.
func (s *MockHAServer) URL() string { return s.server.URL }

// Close shuts the mock server down.
func (s *MockHAServer) Close() { s.server.Close() }

// SetConfig replaces the configuration served at /api/config.
func (s *MockHAServer) SetConfig(cfg models.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
}

// SetState seeds or replaces an entity state.
func (s *MockHAServer) SetState(entityID, state string, attributes map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	s.states[entityID] = models.State{
		EntityID:    entityID,
		State:       state,
		Attributes:  attributes,
		LastChanged: now,
		LastUpdated: now,
	}
}

// SetLogbook seeds the entries served at /api/logbook.
func (s *MockHAServer) SetLogbook(entries []models.LogbookEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logbook = entries
}

// SetErrorLog seeds the text served at /api/error_log.
func (s *MockHAServer) SetErrorLog(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorLog = text
}

// ServiceCalls returns all recorded service calls.
func (s *MockHAServer) ServiceCalls() []ServiceCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ServiceCall(nil), s.serviceCalls...)
}

func (s *MockHAServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+s.token {
		writeJSON(w, http.StatusUnauthorized, models.APIMessage{Message: "Invalid authentication"})
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api")
	switch {
	case path == "/config" && r.Method == http.MethodGet:
		s.mu.RLock()
		cfg := s.config
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, cfg)

	case path == "/config/core/check_config" && r.Method == http.MethodPost:
		writeJSON(w, http.StatusOK, models.ConfigCheck{Result: "valid"})

	case path == "/events" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, []models.Event{
			{Event: "state_changed", ListenerCount: 2},
			{Event: "call_service", ListenerCount: 1},
		})

	case strings.HasPrefix(path, "/events/") && r.Method == http.MethodPost:
		eventType := strings.TrimPrefix(path, "/events/")
		writeJSON(w, http.StatusOK, models.APIMessage{Message: "Event " + eventType + " fired."})

	case path == "/services" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, []models.Service{
			{Domain: "light", Services: map[string]json.RawMessage{
				"turn_on":  json.RawMessage(`{}`),
				"turn_off": json.RawMessage(`{}`),
			}},
		})

	case strings.HasPrefix(path, "/services/") && r.Method == http.MethodPost:
		s.handleServiceCall(w, r, strings.TrimPrefix(path, "/services/"))

	case path == "/history/period" && r.Method == http.MethodGet:
		s.handleHistory(w, r)

	case path == "/logbook" && r.Method == http.MethodGet:
		s.mu.RLock()
		entries := s.logbook
		s.mu.RUnlock()
		if entries == nil {
			entries = []models.LogbookEntry{}
		}
		writeJSON(w, http.StatusOK, entries)

	case path == "/states" && r.Method == http.MethodGet:
		s.mu.RLock()
		states := make([]models.State, 0, len(s.states))
		for _, st := range s.states {
			states = append(states, st)
		}
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, states)

	case strings.HasPrefix(path, "/states/") && r.Method == http.MethodGet:
		entityID := strings.TrimPrefix(path, "/states/")
		s.mu.RLock()
		st, ok := s.states[entityID]
		s.mu.RUnlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, models.APIMessage{Message: "Entity not found."})
			return
		}
		writeJSON(w, http.StatusOK, st)

	case strings.HasPrefix(path, "/states/") && r.Method == http.MethodPost:
		s.handleSetState(w, r, strings.TrimPrefix(path, "/states/"))

	case path == "/error_log" && r.Method == http.MethodGet:
		s.mu.RLock()
		text := s.errorLog
		s.mu.RUnlock()
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(text))

	case path == "/template" && r.Method == http.MethodPost:
		var req models.TemplateRequest
		json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("rendered: " + req.Template))

	case path == "/intent/handle" && r.Method == http.MethodPost:
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("done"))

	default:
		writeJSON(w, http.StatusNotFound, models.APIMessage{Message: "Not found."})
	}
}

func (s *MockHAServer) handleServiceCall(w http.ResponseWriter, r *http.Request, rest string) {
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 {
		writeJSON(w, http.StatusNotFound, models.APIMessage{Message: "Not found."})
		return
	}

	var data map[string]interface{}
	json.NewDecoder(r.Body).Decode(&data)

	s.mu.Lock()
	s.serviceCalls = append(s.serviceCalls, ServiceCall{
		Domain:  parts[0],
		Service: parts[1],
		Data:    data,
	})
	s.mu.Unlock()

	// Home Assistant responds with the states changed by the call.
	writeJSON(w, http.StatusOK, []models.State{})
}

func (s *MockHAServer) handleSetState(w http.ResponseWriter, r *http.Request, entityID string) {
	var update models.StateUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusBadRequest, models.APIMessage{Message: "Invalid JSON."})
		return
	}

	s.mu.Lock()
	_, existed := s.states[entityID]
	now := time.Now().UTC()
	st := models.State{
		EntityID:    entityID,
		State:       update.State,
		Attributes:  update.Attributes,
		LastChanged: now,
		LastUpdated: now,
	}
	s.states[entityID] = st
	s.mu.Unlock()

	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	writeJSON(w, status, st)
}

func (s *MockHAServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	entityID := r.URL.Query().Get("filter_entity_id")

	s.mu.RLock()
	defer s.mu.RUnlock()

	grouped := [][]models.HistoryEntry{}
	for id, st := range s.states {
		if entityID != "" && id != entityID {
			continue
		}
		grouped = append(grouped, []models.HistoryEntry{{
			EntityID:    st.EntityID,
			State:       st.State,
			Attributes:  st.Attributes,
			LastChanged: st.LastChanged,
			LastUpdated: st.LastUpdated,
		}})
	}
	writeJSON(w, http.StatusOK, grouped)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
