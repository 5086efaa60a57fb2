package clipboard

import "sync"

// Memory is an in-process Backend used by tests and by the headless build.
// It models the clipboard as independent format slots, like the real thing.
type Memory struct {
	mu     sync.Mutex
	text   *string
	html   *string
	rtf    []byte
	files  []string
	Pastes int // number of Paste calls observed
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Name() string { return "in-memory" }

func (m *Memory) ReadText() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.text == nil {
		return "", false
	}
	return *m.text, true
}

func (m *Memory) ReadHTML() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.html == nil {
		return "", false
	}
	return *m.html, true
}

func (m *Memory) ReadFiles() ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		return nil, false
	}
	out := make([]string, len(m.files))
	copy(out, m.files)
	return out, true
}

func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
	m.text = &text
	return nil
}

func (m *Memory) WriteRich(r Rich) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
	if r.HTML != "" {
		h := r.HTML
		m.html = &h
	}
	if len(r.RTF) > 0 {
		m.rtf = append([]byte(nil), r.RTF...)
	}
	t := r.Text
	m.text = &t
	return nil
}

func (m *Memory) WriteFiles(paths []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
	m.files = append([]string(nil), paths...)
	return nil
}

func (m *Memory) Snapshot() (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var s Snapshot
	if m.text != nil {
		s.entries = append(s.entries, snapEntry{name: "text", data: []byte(*m.text)})
	}
	if m.html != nil {
		s.entries = append(s.entries, snapEntry{name: "html", data: []byte(*m.html)})
	}
	if len(m.rtf) > 0 {
		s.entries = append(s.entries, snapEntry{name: "rtf", data: append([]byte(nil), m.rtf...)})
	}
	if m.files != nil {
		s.entries = append(s.entries, snapEntry{name: "files", data: []byte(joinNull(m.files))})
	}
	return &s, nil
}

func (m *Memory) Restore(s *Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
	if s == nil {
		return
	}
	for _, e := range s.entries {
		switch e.name {
		case "text":
			t := string(e.data)
			m.text = &t
		case "html":
			h := string(e.data)
			m.html = &h
		case "rtf":
			m.rtf = append([]byte(nil), e.data...)
		case "files":
			m.files = splitNull(string(e.data))
		}
	}
}

func (m *Memory) Paste() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Pastes++
	return nil
}

func (m *Memory) Close() {}

func (m *Memory) clearLocked() {
	m.text = nil
	m.html = nil
	m.rtf = nil
	m.files = nil
}

func joinNull(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\x00"
		}
		out += p
	}
	return out
}

func splitNull(s string) []string {
	if s == "" {
		return []string{}
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
