package cartoon

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EntryKind distinguishes the two flows that can add history entries.
type EntryKind string

const (
	EntryKindCartoon EntryKind = "cartoon"
	EntryKindEdit    EntryKind = "edit"
)

// Entry is one completed generation or edit kept in memory.
type Entry struct {
	ID        string    `json:"id"`
	Kind      EntryKind `json:"kind"`
	Prompt    string    `json:"prompt"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultHistoryLimit caps memory growth; results are data URLs and can run
// to megabytes each.
const DefaultHistoryLimit = 50

// History is an in-memory, newest-first record of completed actions. Nothing
// is persisted: a restart clears it.
type History struct {
	mu      sync.Mutex
	limit   int
	entries []Entry
}

// NewHistory creates a History retaining at most limit entries.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Add records a completed action and returns the stored entry. The oldest
// entry is dropped once the cap is reached.
func (h *History) Add(kind EntryKind, prompt, image string) Entry {
	entry := Entry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Prompt:    prompt,
		Image:     image,
		CreatedAt: time.Now().UTC(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append([]Entry{entry}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
	return entry
}

// List returns a copy of the entries, newest first.
func (h *History) List() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear drops all entries.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}
