package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileLoader reads a JSON fixture from disk.
type FileLoader struct {
	Path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

func (l *FileLoader) Load(_ context.Context) (*Fixture, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %s: %w", l.Path, err)
	}

	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures %s: %w", l.Path, err)
	}

	return &f, nil
}
