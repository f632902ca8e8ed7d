package hostsim

import (
	"sort"
	"sync"

	"github.com/danmuck/netcode/internal/netcode"
)

// Registry tracks loaded components by name.
type Registry struct {
	mu     sync.RWMutex
	loaded map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{loaded: make(map[string]struct{})}
}

func (r *Registry) Load(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded[name] = struct{}{}
}

func (r *Registry) Unload(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.loaded, name)
}

func (r *Registry) IsLoaded(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.loaded[name]
	return ok
}

// LoadedComponents returns loaded components ordered by name.
func (r *Registry) LoadedComponents() []netcode.Component {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]netcode.Component, 0, len(r.loaded))
	for name := range r.loaded {
		list = append(list, netcode.Component{Name: name})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
