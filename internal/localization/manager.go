package localization

import "sync"

// Manager resolves UI strings for the active language, falling back to the
// default language and finally to the key itself. Bundles are cached after
// the first load; language switches are the only writes.
type Manager struct {
	source   DataSource
	fallback Language

	mu      sync.RWMutex
	current Language
	bundles map[Language]map[string]string
}

func NewManager(source DataSource, fallback Language) *Manager {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	return &Manager{
		source:   source,
		fallback: fallback,
		current:  fallback,
		bundles:  make(map[Language]map[string]string),
	}
}

// Language returns the active language.
func (m *Manager) Language() Language {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetLanguage switches the active language. The bundle loads eagerly so a
// missing bundle is reported here instead of silently falling back on every
// lookup.
func (m *Manager) SetLanguage(lang Language) error {
	if _, err := m.bundle(lang); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = lang
	m.mu.Unlock()
	return nil
}

// Translate returns the string for key in the active language, then the
// default language, then the key itself. Lookups never fail.
func (m *Manager) Translate(key string) string {
	m.mu.RLock()
	current := m.current
	m.mu.RUnlock()

	if bundle, err := m.bundle(current); err == nil {
		if v, ok := bundle[key]; ok && v != "" {
			return v
		}
	}
	if current != m.fallback {
		if bundle, err := m.bundle(m.fallback); err == nil {
			if v, ok := bundle[key]; ok && v != "" {
				return v
			}
		}
	}
	return key
}

// Bundle returns a copy of the whole bundle for lang.
func (m *Manager) Bundle(lang Language) (map[string]string, error) {
	bundle, err := m.bundle(lang)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(bundle))
	for k, v := range bundle {
		out[k] = v
	}
	return out, nil
}

func (m *Manager) bundle(lang Language) (map[string]string, error) {
	m.mu.RLock()
	bundle, ok := m.bundles[lang]
	m.mu.RUnlock()
	if ok {
		return bundle, nil
	}

	bundle, err := m.source.Load(lang)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.bundles[lang] = bundle
	m.mu.Unlock()
	return bundle, nil
}
