// Package fileingest reads operator-supplied content files: JSON documents
// holding an array of raw items that are fed through the same
// normalize/validate pipeline as discovered content.
package fileingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"techpulse/internal/models"
)

// FileMeta holds metadata about a file to be ingested.
type FileMeta struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// DiscoverItemFiles recursively finds all .json files under rootDir.
func DiscoverItemFiles(ctx context.Context, rootDir string) ([]FileMeta, error) {
	var files []FileMeta
	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".json") {
			return nil
		}
		meta, metaErr := ExtractFileMeta(path)
		if metaErr != nil {
			// Skip files we can't stat, but continue the walk.
			return nil
		}
		files = append(files, meta)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ExtractFileMeta extracts Name, Path, Size and ModTime for a file.
func ExtractFileMeta(path string) (FileMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileMeta{}, err
	}
	return FileMeta{
		Path:    path,
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// ReadItems decodes one file as a JSON array of raw items. Items with no
// source are attributed to the file they came from.
func ReadItems(path string) ([]models.RawItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items []models.RawItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i := range items {
		if items[i].Source == "" {
			items[i].Source = "file:" + filepath.Base(path)
		}
	}
	return items, nil
}
