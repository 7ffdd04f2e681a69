package keymap

// Resolver answers key-to-action lookups over a binding table. Both
// directions are indexed up front; lookups happen on every keypress.
type Resolver struct {
	actionOf map[string]Action
	keysOf   map[Action][]string
}

// NewResolver indexes the given bindings. When two bindings claim the
// same key the later one wins, matching the table's reading order.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actionOf: make(map[string]Action),
		keysOf:   make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.actionOf[key] = b.Action
			if !contains(r.keysOf[b.Action], key) {
				r.keysOf[b.Action] = append(r.keysOf[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the bound action, or the zero Action for free keys.
func (r *Resolver) Resolve(key string) Action {
	return r.actionOf[key]
}

// KeysFor lists the keys bound to an action, in table order. Used for
// help text.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keysOf[action]
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
