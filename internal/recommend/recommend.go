package recommend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Response field names.
const (
	FieldInclude = "include_projects"
	FieldExclude = "exclude_projects"
)

// ErrInvalidResponse is returned when the response cannot be read as a
// project selection.
var ErrInvalidResponse = errors.New("invalid project selection response")

// Recommendation lists the project titles the model wants shown or hidden.
// Titles are free text; order is kept and duplicates are allowed.
type Recommendation struct {
	Include []string `json:"include_projects"`
	Exclude []string `json:"exclude_projects"`
}

// IsEmpty returns true if the recommendation names no titles at all.
func (r Recommendation) IsEmpty() bool {
	return len(r.Include) == 0 && len(r.Exclude) == 0
}

// LoadFile loads a response from the given path.
func LoadFile(path string) (Recommendation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recommendation{}, fmt.Errorf("failed to read response file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a JSON project selection response.
func Parse(data []byte) (Recommendation, error) {
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(stripFence(data), &fields); err != nil {
		return Recommendation{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	var (
		rec Recommendation
		err error
	)

	if rec.Include, err = titleList(fields, FieldInclude); err != nil {
		return Recommendation{}, err
	}

	if rec.Exclude, err = titleList(fields, FieldExclude); err != nil {
		return Recommendation{}, err
	}

	return rec, nil
}

// titleList decodes one list field. Absent or null fields yield an empty list.
func titleList(fields map[string]json.RawMessage, name string) ([]string, error) {
	raw, ok := fields[name]
	if !ok || string(bytes.TrimSpace(raw)) == "null" {
		return []string{}, nil
	}

	var titles []string

	err := json.Unmarshal(raw, &titles)
	if err != nil {
		// Some models return the list as a JSON-encoded string.
		var encoded string
		if json.Unmarshal(raw, &encoded) != nil || json.Unmarshal([]byte(encoded), &titles) != nil {
			return nil, fmt.Errorf("%w: field %q must be a list of strings", ErrInvalidResponse, name)
		}
	}

	out := make([]string, len(titles))
	for i, t := range titles {
		out[i] = strings.TrimSpace(t)
	}

	return out, nil
}

// stripFence removes a surrounding Markdown code fence, if any.
func stripFence(data []byte) []byte {
	s := strings.TrimSpace(string(data))
	if !strings.HasPrefix(s, "```") {
		return data
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}

	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return []byte(s)
}
