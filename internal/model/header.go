package model

import "strings"

type headerEntry struct {
	name   string
	values []string
}

// Header is an ordered multimap of header fields. Names are matched
// case-insensitively, but the spelling of the first insertion is the one
// written on the wire: headers are never canonicalized.
//
// Like http.Header, a copy made by assignment shares its values with the
// original; use Clone before changing a copy.
type Header struct {
	entries []headerEntry
}

// NewHeader builds a Header from name/value pairs, e.g.
//
//	NewHeader("Connection", "close", "X-Trace", "1")
//
// a trailing name without a value is ignored.
func NewHeader(kv ...string) Header {
	var h Header
	for i := 0; i+1 < len(kv); i += 2 {
		h.Add(kv[i], kv[i+1])
	}
	return h
}

func (h *Header) index(name string) int {
	for i := range h.entries {
		if strings.EqualFold(h.entries[i].name, name) {
			return i
		}
	}
	return -1
}

// Add appends value to the values of name.
func (h *Header) Add(name, value string) {
	if i := h.index(name); i >= 0 {
		h.entries[i].values = append(h.entries[i].values, value)
		return
	}
	h.entries = append(h.entries, headerEntry{name: name, values: []string{value}})
}

// Set replaces all values of name, keeping its position if already present.
func (h *Header) Set(name, value string) {
	if i := h.index(name); i >= 0 {
		h.entries[i].values = []string{value}
		return
	}
	h.entries = append(h.entries, headerEntry{name: name, values: []string{value}})
}

// Get returns the first value of name, or "" if absent.
func (h Header) Get(name string) string {
	if i := h.index(name); i >= 0 && len(h.entries[i].values) > 0 {
		return h.entries[i].values[0]
	}
	return ""
}

func (h Header) Values(name string) []string {
	if i := h.index(name); i >= 0 {
		return append([]string(nil), h.entries[i].values...)
	}
	return nil
}

func (h Header) Has(name string) bool {
	return h.index(name) >= 0
}

// Del removes name and all its values. The remaining entries are moved to a
// new slice, so a Header copied by assignment keeps its own entries.
func (h *Header) Del(name string) {
	i := h.index(name)
	if i < 0 {
		return
	}
	entries := make([]headerEntry, 0, len(h.entries)-1)
	entries = append(entries, h.entries[:i]...)
	h.entries = append(entries, h.entries[i+1:]...)
}

// Len returns the number of distinct header names.
func (h Header) Len() int {
	return len(h.entries)
}

// Each calls fn once per value in insertion order, stopping at the first error.
func (h Header) Each(fn func(name, value string) error) error {
	for _, e := range h.entries {
		for _, v := range e.values {
			if err := fn(e.name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h Header) Clone() Header {
	if h.entries == nil {
		return Header{}
	}
	c := Header{entries: make([]headerEntry, len(h.entries))}
	for i, e := range h.entries {
		c.entries[i] = headerEntry{name: e.name, values: append([]string(nil), e.values...)}
	}
	return c
}
