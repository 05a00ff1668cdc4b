// Package folder implements the document source over a local folder of
// XML export files.
package folder

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/exporta-cli/internal/logger"
)

// debounce is how long Watch waits after the last filesystem event
// before emitting, so bursts of writes coalesce into one rerun.
const debounce = 200 * time.Millisecond

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Source lists and reads XML export documents from a folder.
type Source struct {
	root      string
	recursive bool
}

// New creates a folder source. When recursive is set, subfolders are
// scanned as well.
func New(root string, recursive bool) *Source {
	return &Source{root: root, recursive: recursive}
}

// List returns the folder's export documents sorted case-insensitively
// by path, so document processing order is deterministic across runs.
func (s *Source) List(_ context.Context) ([]domain.ExportDocument, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		return nil, fmt.Errorf("stat input folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a folder", domain.ErrInvalidInput, s.root)
	}

	var docs []domain.ExportDocument
	err = filepath.WalkDir(s.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if !s.recursive && path != s.root {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".xml") {
			docs = append(docs, domain.ExportDocument{
				Name: filepath.Base(path),
				Path: path,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan input folder: %w", err)
	}

	if len(docs) == 0 {
		return nil, domain.ErrNoDocuments
	}

	sort.Slice(docs, func(a, b int) bool {
		return strings.ToLower(docs[a].Path) < strings.ToLower(docs[b].Path)
	})
	return docs, nil
}

// Read returns the raw bytes of one export document.
func (s *Source) Read(_ context.Context, doc domain.ExportDocument) ([]byte, error) {
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

// Watch emits an event whenever the folder's contents change. Bursts of
// filesystem events are coalesced. The channel closes when ctx is
// cancelled.
func (s *Source) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := s.addWatchDirs(watcher); err != nil {
		watcher.Close()
		return nil, err
	}

	events := make(chan struct{}, 1)

	go func() {
		defer close(events)
		defer watcher.Close()

		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// New subfolders need watching too in recursive mode.
				if s.recursive && event.Op.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = watcher.Add(event.Name)
					}
				}
				if timer == nil {
					timer = time.NewTimer(debounce)
				} else {
					timer.Reset(debounce)
				}
				fire = timer.C

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)

			case <-fire:
				fire = nil
				select {
				case events <- struct{}{}:
				default:
				}
			}
		}
	}()

	return events, nil
}

// addWatchDirs registers the root (and subfolders in recursive mode)
// with the watcher.
func (s *Source) addWatchDirs(watcher *fsnotify.Watcher) error {
	if !s.recursive {
		return watcher.Add(s.root)
	}
	return filepath.WalkDir(s.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
