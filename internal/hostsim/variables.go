package hostsim

import (
	"sort"
	"sync"
)

type variable struct {
	value string
	subs  []func()
}

// Variables is a named string store with change subscriptions. Callbacks run
// synchronously on the goroutine that called Set, outside the store's lock.
type Variables struct {
	mu    sync.Mutex
	items map[string]*variable
}

func NewVariables() *Variables {
	return &Variables{items: make(map[string]*variable)}
}

// Register creates name with an initial value. Re-registering keeps the
// existing value and subscribers.
func (v *Variables) Register(name, initial string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.items[name]; ok {
		return
	}
	v.items[name] = &variable{value: initial}
}

// Remove drops name and its subscribers.
func (v *Variables) Remove(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.items, name)
}

func (v *Variables) Exists(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, ok := v.items[name]
	return ok
}

// Get returns the value of name, or "" when it does not exist.
func (v *Variables) Get(name string) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if item, ok := v.items[name]; ok {
		return item.value
	}
	return ""
}

// Set updates an existing variable and notifies subscribers when the value
// changed. Unknown names are ignored.
func (v *Variables) Set(name, value string) {
	v.mu.Lock()
	item, ok := v.items[name]
	if !ok || item.value == value {
		v.mu.Unlock()
		return
	}
	item.value = value
	subs := append([]func(){}, item.subs...)
	v.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// OnChange subscribes fn to later changes of an existing variable.
func (v *Variables) OnChange(name string, fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if item, ok := v.items[name]; ok {
		item.subs = append(item.subs, fn)
	}
}

// Names lists registered variables in sorted order.
func (v *Variables) Names() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, 0, len(v.items))
	for name := range v.items {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
