// ABOUTME: Music library discovery
// ABOUTME: Walks a directory tree collecting playable audio files
package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Extensions lists the file types the decoders can play.
var Extensions = []string{".mp3", ".flac"}

// Scan walks root and returns the paths of all playable audio files.
func Scan(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range Extensions {
			if ext == want {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	return files, nil
}
