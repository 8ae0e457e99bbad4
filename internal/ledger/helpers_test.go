package ledger

import (
	"encoding/json"
	"sync"
	"testing"

	"elitezone/internal/websocket"
)

type memStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]byte)}
}

func (m *memStore) Load(key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.docs[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memStore) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = data
	return nil
}

func (m *memStore) put(t *testing.T, key string, raw string) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[key] = []byte(raw)
}

type recordedEvent struct {
	userID string
	event  websocket.Event
}

type recordingHub struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (h *recordingHub) BroadcastEvent(userID string, event websocket.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, recordedEvent{userID: userID, event: event})
}

func (h *recordingHub) eventsFor(userID string) []websocket.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []websocket.Event
	for _, e := range h.events {
		if e.userID == userID {
			out = append(out, e.event)
		}
	}
	return out
}

func newTestService(t *testing.T) (*Service, *memStore, *recordingHub) {
	t.Helper()
	store := newMemStore()
	hub := &recordingHub{}
	service := NewService(store, hub)
	if err := service.Load(); err != nil {
		t.Fatalf("failed to load service: %v", err)
	}
	return service, store, hub
}
