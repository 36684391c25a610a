package codec

import "sync"

// Registry discovers codec families by UID or display name. Splash's own
// UID and Name are fixed package-level constants (every *splash.Codec
// instance returns the same pair, spec §6), so unlike a registry meant to
// span many distinct codec families keyed independently by each, name here
// is not a second identity worth its own map slot: it is resolved against
// the UID-indexed table at lookup time instead.
type Registry struct {
	mu    sync.RWMutex
	byUID map[string]Codec
}

var defaultRegistry = &Registry{
	byUID: make(map[string]Codec),
}

// Register registers a codec under its UID.
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec by UID or, failing that, by name.
func Get(nameOrUID string) (Codec, error) {
	return defaultRegistry.Get(nameOrUID)
}

// List returns all registered codecs.
func List() []Codec {
	return defaultRegistry.List()
}

// Register indexes codec by its UID.
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUID[codec.UID()] = codec
}

// Get retrieves a codec by UID, falling back to a scan by name.
func (r *Registry) Get(nameOrUID string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if codec, ok := r.byUID[nameOrUID]; ok {
		return codec, nil
	}
	for _, codec := range r.byUID {
		if codec.Name() == nameOrUID {
			return codec, nil
		}
	}
	return nil, ErrCodecNotFound
}

// List returns all registered codecs.
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]Codec, 0, len(r.byUID))
	for _, codec := range r.byUID {
		codecs = append(codecs, codec)
	}
	return codecs
}
