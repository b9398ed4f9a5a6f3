package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/gridboard/internal/kv"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print layout changes made by other processes",
	Long: `Watch the file backend for changes to saved layouts and print the
current page's layouts whenever they change. Stop with Ctrl-C.

Only the file backend can be watched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			store, ok := s.backend.(*kv.FileStore)
			if !ok {
				return errors.New("watch requires the file storage backend")
			}

			w, err := newStoreWatcher(store, s.mgr.StorageKey())
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			PrintInfo(fmt.Sprintf("Watching %s", store.Path(s.mgr.StorageKey())))
			return w.Run(ctx, func() {
				if err := s.mgr.Load(); err != nil {
					PrintError(err.Error())
					return
				}
				names := s.mgr.ListLayoutNames()
				if jsonOutput {
					_ = outputJSON(names)
					return
				}
				rows := make([][]string, 0, len(names))
				for _, n := range names {
					rows = append(rows, []string{n.Name, n.ID})
				}
				PrintSection(fmt.Sprintf("Layouts of page '%s' changed", s.mgr.CurrentPage()))
				PrintTable([]string{"Name", "ID"}, rows)
			})
		})
	},
}

// storeWatcher reports writes to one key of a FileStore.
type storeWatcher struct {
	watcher *fsnotify.Watcher
	target  string
}

// newStoreWatcher starts watching the directory of store. Events for other
// files in the directory are ignored.
func newStoreWatcher(store *kv.FileStore, key string) (*storeWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(store.Dir()); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", store.Dir(), err)
	}
	return &storeWatcher{
		watcher: watcher,
		target:  filepath.Clean(store.Path(key)),
	}, nil
}

// Run calls onChange after each write to the watched key until ctx is done.
func (w *storeWatcher) Run(ctx context.Context, onChange func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				onChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// Close stops watching.
func (w *storeWatcher) Close() error {
	return w.watcher.Close()
}
