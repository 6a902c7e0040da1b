package registry

// orderedMap is a map that remembers insertion order. Its first entry is the default.
type orderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{values: make(map[string]V)}
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// insert adds a new key at the end. It reports false when the key exists.
func (m *orderedMap[V]) insert(key string, value V) bool {
	if _, ok := m.values[key]; ok {
		return false
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
	return true
}

// replace overwrites an existing key in place, keeping its position.
func (m *orderedMap[V]) replace(key string, value V) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	m.values[key] = value
	return true
}

func (m *orderedMap[V]) remove(key string) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

func (m *orderedMap[V]) first() (string, V, bool) {
	if len(m.keys) == 0 {
		var zero V
		return "", zero, false
	}
	key := m.keys[0]
	return key, m.values[key], true
}

func (m *orderedMap[V]) ids() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *orderedMap[V]) each(fn func(key string, value V)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}
