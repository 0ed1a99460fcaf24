package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
)

// Registry manages a collection of document profiles.
type Registry interface {
	// Register adds a profile to the registry
	Register(p *Profile) error

	// Unregister removes a profile from the registry
	Unregister(name string) error

	// Get returns a profile by name
	Get(name string) (*Profile, bool)

	// List returns all registered profiles
	List() []*Profile

	// ListByType returns profiles for a specific document type
	ListByType(docType string) []*Profile

	// Reload reloads all profiles from the configured directory
	Reload() error

	// Watch starts watching the profile directory for changes
	Watch() error

	// StopWatch stops watching the profile directory
	StopWatch()

	// LoadDirectory loads all profiles from a directory
	LoadDirectory(dir string) error

	// LoadFile loads a single profile file
	LoadFile(path string) error
}

// DefaultRegistry is the default implementation of the profile Registry.
type DefaultRegistry struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
	dir      string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onChange func(event string, p *Profile)
}

// NewRegistry creates a new profile registry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		profiles: make(map[string]*Profile),
	}
}

// NewRegistryWithDirectory creates a new registry and loads profiles from
// the directory.
func NewRegistryWithDirectory(dir string) (*DefaultRegistry, error) {
	r := NewRegistry()
	r.dir = dir

	if err := r.LoadDirectory(dir); err != nil {
		return nil, err
	}

	return r, nil
}

// Register adds a profile to the registry. Registering a name again
// replaces the earlier profile, so that edited profile files can be
// re-loaded in place.
func (r *DefaultRegistry) Register(p *Profile) error {
	if p == nil {
		return fmt.Errorf("profile cannot be nil")
	}

	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[p.Name] = p
	return nil
}

// Unregister removes a profile from the registry.
func (r *DefaultRegistry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}

	delete(r.profiles, name)
	return nil
}

// Get returns a profile by name.
func (r *DefaultRegistry) Get(name string) (*Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[name]
	return p, ok
}

// List returns all registered profiles.
func (r *DefaultRegistry) List() []*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profiles := make([]*Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		profiles = append(profiles, p)
	}
	return profiles
}

// ListByType returns profiles for a specific document type.
func (r *DefaultRegistry) ListByType(docType string) []*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var profiles []*Profile
	docTypeLower := strings.ToLower(docType)
	for _, p := range r.profiles {
		if strings.ToLower(p.Type) == docTypeLower {
			profiles = append(profiles, p)
		}
	}
	return profiles
}

// Count returns the number of registered profiles.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}

// LoadDirectory loads all YAML profile files from a directory.
func (r *DefaultRegistry) LoadDirectory(dir string) error {
	r.dir = dir

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// Directory doesn't exist, nothing to load
			return nil
		}
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var loadErrors []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		path := filepath.Join(dir, name)
		if err := r.LoadFile(path); err != nil {
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(loadErrors) > 0 {
		return fmt.Errorf("errors loading profiles: %s", strings.Join(loadErrors, "; "))
	}

	return nil
}

// LoadFile loads a single profile file.
func (r *DefaultRegistry) LoadFile(path string) error {
	p, err := LoadFromFile(path)
	if err != nil {
		return err
	}

	if err := r.Register(p); err != nil {
		return fmt.Errorf("registering profile: %w", err)
	}

	return nil
}

// Reload reloads all profiles from the configured directory.
func (r *DefaultRegistry) Reload() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for reload")
	}

	r.mu.Lock()
	r.profiles = make(map[string]*Profile)
	r.mu.Unlock()

	return r.LoadDirectory(r.dir)
}

// SetOnChange sets a callback function that is called when profiles change.
func (r *DefaultRegistry) SetOnChange(fn func(event string, p *Profile)) {
	r.onChange = fn
}

// Watch starts watching the profile directory for changes.
func (r *DefaultRegistry) Watch() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.dir); err != nil {
		r.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", r.dir, err)
	}

	return nil
}

// watchLoop handles file system events.
func (r *DefaultRegistry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}

			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				r.handleFileChange(event.Name, "create")

			case event.Op&fsnotify.Write == fsnotify.Write:
				r.handleFileChange(event.Name, "modify")

			case event.Op&fsnotify.Remove == fsnotify.Remove:
				r.handleFileRemove(event.Name)

			case event.Op&fsnotify.Rename == fsnotify.Rename:
				r.handleFileRemove(event.Name)
			}

		case _, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			// ignore and keep watching
		}
	}
}

// handleFileChange handles file creation or modification.
func (r *DefaultRegistry) handleFileChange(path string, eventType string) {
	if err := r.LoadFile(path); err != nil {
		// A bad file keeps the previously loaded profile
		return
	}

	if r.onChange != nil {
		if p, ok := r.getProfileByFile(path); ok {
			r.onChange(eventType, p)
		}
	}
}

// handleFileRemove handles file removal. The registry does not track which
// profile came from which file, so the whole directory is reloaded.
func (r *DefaultRegistry) handleFileRemove(path string) {
	if err := r.Reload(); err != nil {
		return
	}

	if r.onChange != nil {
		r.onChange("remove", nil)
	}
}

// getProfileByFile finds the profile loaded from the given file, using the
// file name as a heuristic for the profile name.
func (r *DefaultRegistry) getProfileByFile(path string) (*Profile, bool) {
	base := filepath.Base(path)
	name := strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")

	return r.Get(name)
}

// StopWatch stops watching the profile directory.
func (r *DefaultRegistry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
	}
	if r.watcher != nil {
		r.watcher.Close()
	}
}

// Clear removes all profiles from the registry.
func (r *DefaultRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = make(map[string]*Profile)
}
