package shaders

import (
	"path/filepath"

	"github.com/bloeys/glribbon/logging"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports when any of a set of shader files changes on disk.
//
// Directories are watched rather than the files themselves, because many editors save
// by writing a temp file and renaming it over the original, which drops file watches.
type Watcher struct {
	fsw     *fsnotify.Watcher
	files   map[string]struct{}
	changed chan string
	done    chan struct{}
}

func NewWatcher(paths ...string) (*Watcher, error) {

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		files:   make(map[string]struct{}, len(paths)),
		changed: make(chan string, 16),
		done:    make(chan struct{}),
	}

	dirs := map[string]struct{}{}
	for _, p := range paths {

		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, err
		}

		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {

	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}

			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}

			if _, ok := w.files[abs]; !ok {
				continue
			}

			// Never block the watcher on a render loop that hasn't polled yet
			select {
			case w.changed <- abs:
			default:
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.WarnLog.Println("Shader watcher error:", err)
		}
	}
}

// Poll returns the files that changed since the last call without blocking.
// Duplicates are removed.
func (w *Watcher) Poll() []string {

	var changed []string
	seen := map[string]struct{}{}

	for {
		select {
		case f := <-w.changed:
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				changed = append(changed, f)
			}
		default:
			return changed
		}
	}
}

// Changes exposes the raw change notifications. Mostly useful in tests.
func (w *Watcher) Changes() <-chan string {
	return w.changed
}

func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
