package codec

import "encoding/json"

// KeyedWriter writes named string fields to some external representation.
// Implementations decide the concrete serialization backend.
type KeyedWriter interface {
	WriteString(key, value string)
}

// KeyedReader reads named string fields back from an external representation.
// The boolean reports whether the field was present.
type KeyedReader interface {
	ReadString(key string) (string, bool)
}

// Record is a map-backed field store implementing both KeyedWriter and
// KeyedReader. It marshals to a flat JSON object, which makes it usable as a
// persistence payload directly.
type Record map[string]string

// NewRecord creates an empty Record ready for encoding.
func NewRecord() Record {
	return make(Record)
}

func (r Record) WriteString(key, value string) {
	r[key] = value
}

func (r Record) ReadString(key string) (string, bool) {
	value, ok := r[key]
	return value, ok
}

// MarshalJSON renders the record as a flat JSON object.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string(r))
}

// UnmarshalJSON parses a flat JSON object back into the record.
func (r *Record) UnmarshalJSON(data []byte) error {
	fields := make(map[string]string)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = fields
	return nil
}
