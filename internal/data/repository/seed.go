package repository

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"movies-api/internal/data/entity"
)

//go:embed movies.json
var embeddedSeed []byte

// LoadSeed decodes a JSON array of movies.
func LoadSeed(r io.Reader) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	if err := json.NewDecoder(r).Decode(&movies); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	seen := make(map[string]struct{}, len(movies))
	for i, m := range movies {
		if m == nil || m.ID == "" {
			return nil, fmt.Errorf("decode seed: movie %d has no id", i)
		}
		if _, ok := seen[m.ID]; ok {
			return nil, fmt.Errorf("decode seed: duplicate id %s", m.ID)
		}
		seen[m.ID] = struct{}{}
	}

	return movies, nil
}

// SeedMovies loads the seed from path, or the embedded seed when path is empty.
func SeedMovies(path string) ([]*entity.Movie, error) {
	if path == "" {
		return LoadSeed(bytes.NewReader(embeddedSeed))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	return LoadSeed(f)
}
