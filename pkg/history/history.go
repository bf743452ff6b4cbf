// Package history persists finished hands for later review.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"holdempro/pkg/poker/texasholdem"
)

// Sink receives the result of every finished hand
type Sink interface {
	Record(result *texasholdem.Result) error
}

// FileSink writes one JSON document per hand into a directory, named by the
// hand ID
type FileSink struct {
	dir string
}

// NewFileSink ensures the directory exists and returns a sink writing into it
func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create the history directory: %w", err)
	}

	return &FileSink{dir: dir}, nil
}

// Record writes the hand to disk
func (s *FileSink) Record(result *texasholdem.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	name := filepath.Join(s.dir, result.HandID+".json")
	return os.WriteFile(name, data, 0644)
}

// Load reads a previously recorded hand by its ID
func (s *FileSink) Load(handID string) (*texasholdem.Result, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, handID+".json"))
	if err != nil {
		return nil, err
	}

	var result texasholdem.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Discard is a Sink that drops every hand
type Discard struct{}

// Record does nothing
func (Discard) Record(*texasholdem.Result) error {
	return nil
}
