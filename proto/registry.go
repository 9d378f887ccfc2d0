package proto

import (
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/webpilot/webpilot"
)

// Object is any live protocol object tracked by guid.
type Object interface {
	GUID() string
	TypeTag() string
}

// Registry maps guids to live protocol objects for one session. It is
// shared by every in-flight operation, lookups racing a disposal see
// either the object or nothing. Teardown invalidates every outstanding
// handle at session end.
type Registry struct {
	objLock sync.RWMutex
	objects map[string]Object
	torn    bool
}

// NewRegistry for a session
func NewRegistry() *Registry {
	return &Registry{objects: make(map[string]Object)}
}

// Register inserts, failing if the guid is already present. Guids are
// never reused within a session so a duplicate means a protocol bug.
func (r *Registry) Register(obj Object) error {
	r.objLock.Lock()
	defer r.objLock.Unlock()
	if r.torn {
		return errors.Wrap(webpilot.ErrTargetNotFound, "registry torn down")
	}
	if _, exists := r.objects[obj.GUID()]; exists {
		return errors.Errorf("guid %s already registered", obj.GUID())
	}
	r.objects[obj.GUID()] = obj
	return nil
}

// Unregister on a peer disposal notification. Subsequent lookups and
// handle derefs return nothing.
func (r *Registry) Unregister(guid string) {
	r.objLock.Lock()
	delete(r.objects, guid)
	r.objLock.Unlock()
}

// Get the live object for guid, ok=false if gone.
func (r *Registry) Get(guid string) (Object, bool) {
	r.objLock.RLock()
	defer r.objLock.RUnlock()
	if r.torn {
		return nil, false
	}
	obj, ok := r.objects[guid]
	return obj, ok
}

// Lookup returns a non owning handle for guid. The handle is valid to
// keep around, every deref re-checks liveness.
func (r *Registry) Lookup(guid string) Handle {
	return Handle{guid: guid, registry: r}
}

// Len of the live object table
func (r *Registry) Len() int {
	r.objLock.RLock()
	defer r.objLock.RUnlock()
	return len(r.objects)
}

// Teardown invalidates all outstanding handles. Called once when the
// session closes.
func (r *Registry) Teardown() {
	r.objLock.Lock()
	r.torn = true
	r.objects = make(map[string]Object)
	r.objLock.Unlock()
}

// Handle is a weak reference into a registry. The zero value resolves
// to nothing.
type Handle struct {
	guid     string
	registry *Registry
}

// GUID the handle refers to
func (h Handle) GUID() string {
	return h.guid
}

// Get the referent if it is still live
func (h Handle) Get() (Object, bool) {
	if h.registry == nil {
		return nil, false
	}
	return h.registry.Get(h.guid)
}
