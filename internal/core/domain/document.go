package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DataUnavailableMessage is the error text carried by the sentinel
// document when the knowledge-base file cannot be read or parsed.
const DataUnavailableMessage = "Data not available"

// Document is the knowledge-base document. It is loaded once per
// process and read-only afterwards.
type Document struct {
	// Metadata describes the source data (origin, fetch time, version).
	// It is echoed verbatim by the metadata report.
	Metadata map[string]any `json:"metadata,omitempty"`

	// Content maps section names (faq, sessions, triggers, ...) to
	// their text bodies. Any key may appear; nothing enumerates them.
	Content *SectionMap `json:"content,omitempty"`

	// RAGVectors and CAGContext are opaque pass-through blocks.
	// They are never interpreted, only echoed.
	RAGVectors json.RawMessage `json:"rag_vectors,omitempty"`
	CAGContext json.RawMessage `json:"cag_context,omitempty"`

	// Error is set on the sentinel document produced when loading fails.
	Error string `json:"error,omitempty"`
}

// SentinelDocument returns the document used in place of unreadable
// data. It has no content, so every operation sees an empty knowledge
// base instead of failing.
func SentinelDocument() *Document {
	return &Document{Error: DataUnavailableMessage}
}

// SectionNames returns section names in source order.
// A document with no content has zero sections.
func (d *Document) SectionNames() []string {
	if d == nil || d.Content == nil {
		return nil
	}
	return d.Content.Names()
}

// Section returns the named section and whether it exists.
func (d *Document) Section(name string) (Section, bool) {
	if d == nil || d.Content == nil {
		return Section{}, false
	}
	return d.Content.Get(name)
}

// Section is a named block of the knowledge document.
type Section struct {
	// Content is the full text body.
	Content string `json:"content"`

	// FullLength is the precomputed length stored alongside the text.
	// It is echoed as-is, never recomputed; nil when the source omits it.
	FullLength *int `json:"full_length,omitempty"`
}

// SectionMap is a name-to-Section mapping that preserves the order in
// which sections appear in the source JSON object. Search results and
// the section catalog depend on that order being stable.
type SectionMap struct {
	names    []string
	sections map[string]Section
}

// NewSectionMap creates an empty section map.
func NewSectionMap() *SectionMap {
	return &SectionMap{sections: make(map[string]Section)}
}

// Get returns the section for name and whether it exists.
func (m *SectionMap) Get(name string) (Section, bool) {
	if m == nil {
		return Section{}, false
	}
	sec, ok := m.sections[name]
	return sec, ok
}

// Set stores a section. A repeated name keeps its original position
// but takes the new value.
func (m *SectionMap) Set(name string, sec Section) {
	if m.sections == nil {
		m.sections = make(map[string]Section)
	}
	if _, ok := m.sections[name]; !ok {
		m.names = append(m.names, name)
	}
	m.sections[name] = sec
}

// Names returns section names in insertion order.
func (m *SectionMap) Names() []string {
	if m == nil {
		return nil
	}
	return m.names
}

// Len returns the number of sections.
func (m *SectionMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// UnmarshalJSON decodes a JSON object while recording key order.
// encoding/json's map decoding would lose it.
func (m *SectionMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("content: expected JSON object, got %v", tok)
	}

	m.names = nil
	m.sections = make(map[string]Section)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("content: expected object key, got %v", keyTok)
		}

		var sec Section
		if err := dec.Decode(&sec); err != nil {
			return fmt.Errorf("content: section %q: %w", key, err)
		}
		m.Set(key, sec)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

// MarshalJSON encodes the sections as a JSON object in insertion order.
func (m *SectionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.sections[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
