package filemonitor

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// ChangeCallback is invoked for every write to a watched file, with the
// key the file was registered under.
type ChangeCallback func(key string, event fsnotify.Event)

// FileMonitor watches a flat set of files and forwards write events to
// a callback keyed by registration. Paths are registered before Start;
// the watcher covers their parent directories so atomic
// rename-into-place writes are still observed.
type FileMonitor struct {
	mu       sync.RWMutex
	files    map[string]string // absolute path -> key
	callback ChangeCallback

	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
	wg        sync.WaitGroup
	isRunning bool
}

func NewFileMonitor(callback ChangeCallback) *FileMonitor {
	return &FileMonitor{
		files:    make(map[string]string),
		callback: callback,
	}
}

// AddFile registers a file under a key. Startup only.
func (fm *FileMonitor) AddFile(key, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path '%s': %w", path, err)
	}
	fm.mu.Lock()
	fm.files[filepath.Clean(abs)] = key
	fm.mu.Unlock()
	return nil
}

// Start begins watching the parent directories of every registered file.
func (fm *FileMonitor) Start() error {
	fm.mu.Lock()
	if fm.isRunning {
		fm.mu.Unlock()
		return errors.New("file monitor is already running")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fm.mu.Unlock()
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	dirs := make(map[string]bool)
	for path := range fm.files {
		dirs[filepath.Dir(path)] = true
	}

	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			fm.mu.Unlock()
			return fmt.Errorf("failed to watch directory '%s': %w", dir, err)
		}
	}

	fm.watcher = watcher
	fm.stopCh = make(chan struct{})
	fm.isRunning = true
	fm.mu.Unlock()

	fm.wg.Add(1)
	go fm.watchLoop()

	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (fm *FileMonitor) Stop() error {
	fm.mu.Lock()
	if !fm.isRunning {
		fm.mu.Unlock()
		return errors.New("file monitor is not running")
	}
	watcher := fm.watcher
	close(fm.stopCh)
	fm.isRunning = false
	fm.mu.Unlock()

	fm.wg.Wait()

	if watcher != nil {
		if err := watcher.Close(); err != nil {
			return fmt.Errorf("failed to close watcher: %w", err)
		}
	}
	return nil
}

func (fm *FileMonitor) IsRunning() bool {
	fm.mu.RLock()
	defer fm.mu.RUnlock()
	return fm.isRunning
}

func (fm *FileMonitor) watchLoop() {
	defer fm.wg.Done()

	for {
		select {
		case <-fm.stopCh:
			return

		case event, ok := <-fm.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}

			fm.mu.RLock()
			key, watched := fm.files[filepath.Clean(event.Name)]
			cb := fm.callback
			fm.mu.RUnlock()

			if !watched || cb == nil {
				continue
			}
			cb(key, event)

		case err, ok := <-fm.watcher.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}
