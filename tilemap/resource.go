package tilemap

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/olefasting/fishfight/core"
)

// Meta describes a stored map without loading its document.
type Meta struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
	IsUserMap   bool   `json:"is_user_map"`
	IsTiledMap  bool   `json:"is_tiled_map"`
}

// Resource pairs a map document with its metadata.
type Resource struct {
	Meta Meta `json:"meta"`
	Map  *Map `json:"map"`
}

var mapNameRe = regexp.MustCompile(`[^a-z0-9_]+`)

// MapNameToFilename turns a display name into a stable filename stem.
func MapNameToFilename(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = mapNameRe.ReplaceAllString(s, "")
	if s == "" {
		s = "unnamed"
	}
	return s + ".json"
}

// Store holds map resources, keyed by filename, and persists user maps to a
// directory on disk.
type Store struct {
	mu        sync.RWMutex
	dir       string
	resources map[string]*Resource
}

// NewStore creates a store persisting user maps under dir.
func NewStore(dir string) *Store {
	return &Store{
		dir:       dir,
		resources: make(map[string]*Resource),
	}
}

// LoadDir reads every .json map file under the store's directory.
func (s *Store) LoadDir() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return core.NewError(core.ErrFile, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		res, err := LoadResource(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.resources[entry.Name()] = res
		s.mu.Unlock()
	}
	return nil
}

// LoadResource reads and validates one map resource file.
func LoadResource(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.NewError(core.ErrFile, err)
	}
	var res Resource
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, core.Errorf(core.ErrParsing, "decode map %q: %v", path, err)
	}
	if res.Map == nil {
		return nil, core.Errorf(core.ErrParsing, "map file %q has no map document", path)
	}
	if err := res.Map.Validate(); err != nil {
		return nil, err
	}
	res.Meta.Path = path
	return &res, nil
}

// Create registers a new user map under name and persists it. It fails when
// a map with the same filename already exists.
func (s *Store) Create(name, description string, m *Map) (*Resource, error) {
	filename := MapNameToFilename(name)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.resources[filename]; exists {
		return nil, core.Errorf(core.ErrMap, "a map named %q already exists", name)
	}

	res := &Resource{
		Meta: Meta{
			Name:        name,
			Path:        filepath.Join(s.dir, filename),
			Description: description,
			IsUserMap:   true,
		},
		Map: m,
	}
	if err := s.write(res); err != nil {
		return nil, err
	}
	s.resources[filename] = res
	return res, nil
}

// Save persists an existing resource. Only user maps can be saved.
func (s *Store) Save(res *Resource) error {
	if !res.Meta.IsUserMap {
		return core.Errorf(core.ErrMap, "map %q is not a user map", res.Meta.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(res); err != nil {
		return err
	}
	s.resources[filepath.Base(res.Meta.Path)] = res
	return nil
}

func (s *Store) write(res *Resource) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return core.NewError(core.ErrFile, err)
	}
	f, err := os.Create(res.Meta.Path)
	if err != nil {
		return core.NewError(core.ErrFile, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return core.NewError(core.ErrFile, err)
	}
	return nil
}

// Get returns the resource for filename.
func (s *Store) Get(filename string) (*Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if res, ok := s.resources[filename]; ok {
		return res, nil
	}
	return nil, core.Errorf(core.ErrMap, "no map resource %q", filename)
}

// Delete removes a user map from the store and from disk.
func (s *Store) Delete(filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.resources[filename]
	if !ok {
		return core.Errorf(core.ErrMap, "no map resource %q", filename)
	}
	if !res.Meta.IsUserMap {
		return core.Errorf(core.ErrMap, "map %q is not a user map", res.Meta.Name)
	}
	if err := os.Remove(res.Meta.Path); err != nil && !os.IsNotExist(err) {
		return core.NewError(core.ErrFile, err)
	}
	delete(s.resources, filename)
	return nil
}

// Filenames lists stored filenames in sorted order.
func (s *Store) Filenames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.resources))
	for name := range s.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored resources.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.resources)
}
