package session

import "strings"

// DefaultRecentWindow is how many words the cross-session memory keeps.
const DefaultRecentWindow = 20

// Memory is the cooldown bookkeeping for word selection: the words used
// in the current session and a bounded window of words used recently
// across sessions. It is caller-side state; the selector only reads it.
type Memory struct {
	session map[string]bool
	recent  []string
	window  int
}

// NewMemory creates a memory seeded with recently used words, oldest
// first. Only the last window words are kept.
func NewMemory(recent []string, window int) *Memory {
	if window < 0 {
		window = 0
	}
	m := &Memory{session: make(map[string]bool), window: window}
	for _, w := range recent {
		m.remember(w)
	}
	return m
}

// Use marks word as used in this session and in the recent window.
func (m *Memory) Use(word string) {
	k := key(word)
	if k == "" {
		return
	}
	m.session[k] = true
	m.remember(word)
}

func (m *Memory) remember(word string) {
	k := key(word)
	if k == "" || m.window == 0 {
		return
	}
	// Move to the newest position.
	for i, w := range m.recent {
		if w == k {
			m.recent = append(m.recent[:i], m.recent[i+1:]...)
			break
		}
	}
	m.recent = append(m.recent, k)
	if len(m.recent) > m.window {
		m.recent = m.recent[len(m.recent)-m.window:]
	}
}

// SessionUsed returns a copy of the words used this session.
func (m *Memory) SessionUsed() map[string]bool {
	out := make(map[string]bool, len(m.session))
	for w := range m.session {
		out[w] = true
	}
	return out
}

// RecentlyUsed returns the recent window as a set.
func (m *Memory) RecentlyUsed() map[string]bool {
	out := make(map[string]bool, len(m.recent))
	for _, w := range m.recent {
		out[w] = true
	}
	return out
}

// Recent returns the recent window, oldest first.
func (m *Memory) Recent() []string {
	out := make([]string, len(m.recent))
	copy(out, m.recent)
	return out
}

// ResetSession clears the session set and keeps the recent window.
func (m *Memory) ResetSession() {
	m.session = make(map[string]bool)
}

func key(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
