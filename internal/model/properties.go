package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Properties is a string-to-string mapping that preserves insertion
// order. The lssea report lists SEA attributes in a meaningful order,
// so both the in-memory model and the persisted JSON keep it. Setting
// an existing key overwrites the value in place.
type Properties struct {
	keys   []string
	values map[string]string
}

// NewProperties creates an empty Properties mapping.
func NewProperties() *Properties {
	return &Properties{
		values: make(map[string]string),
	}
}

// Set stores a key/value pair, keeping the key's original position if
// it was already present.
func (p *Properties) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it was present.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of stored keys.
func (p *Properties) Len() int {
	return len(p.keys)
}

// MarshalJSON writes the mapping as a JSON object in insertion order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, recording keys in document order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("properties: expected JSON object, got %v", tok)
	}

	p.keys = nil
	p.values = make(map[string]string)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("properties: expected string key, got %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("properties: value for %q: %w", key, err)
		}
		p.Set(key, value)
	}

	_, err = dec.Token()
	return err
}
