package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-inspect/common"
	"github.com/pkg/errors"
)

// Scene is the ordered collection of pickable objects loaded from one asset.
// Enumeration order is insertion order and is stable, which makes pick tie-breaking
// deterministic. Objects are added during load and never removed while the viewer runs.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Add appends an object to the scene.
	//
	// Parameters:
	//   - obj: the object to add
	//
	// Returns:
	//   - error: if obj is nil or its name is already registered
	Add(obj Object) error

	// Get retrieves an object by name.
	// Returns nil if not found.
	//
	// Parameters:
	//   - name: the object's unique name
	//
	// Returns:
	//   - Object: the object or nil
	Get(name string) Object

	// Objects returns every object in insertion order. The returned slice is a copy.
	//
	// Returns:
	//   - []Object: all objects
	Objects() []Object

	// Selectable returns the selectable objects in insertion order.
	//
	// Returns:
	//   - []Object: the selectable objects
	Selectable() []Object

	// Count returns the number of objects in the scene.
	//
	// Returns:
	//   - int: object count
	Count() int

	// Bounds returns the union of every object's bounds. Empty scenes return an empty box.
	//
	// Returns:
	//   - common.AABB: the world bounds
	Bounds() common.AABB

	// Clear removes all objects from the scene.
	Clear()
}

type scene struct {
	mu *sync.RWMutex

	name    string
	objects []Object
	byName  map[string]Object
}

var _ Scene = &scene{}

// NewScene creates a new empty Scene.
//
// Parameters:
//   - name: the scene identifier
//   - options: variadic list of SceneBuilderOption functions
//
// Returns:
//   - Scene: the new scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:     &sync.RWMutex{},
		name:   name,
		byName: make(map[string]Object),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Add(obj Object) error {
	if obj == nil {
		return errors.New("scene: cannot add nil object")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(obj)
}

func (s *scene) add(obj Object) error {
	if _, exists := s.byName[obj.Name()]; exists {
		return errors.Errorf("scene: object %q already registered", obj.Name())
	}
	s.objects = append(s.objects, obj)
	s.byName[obj.Name()] = obj
	return nil
}

func (s *scene) Get(name string) Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byName[name]
}

func (s *scene) Objects() []Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *scene) Selectable() []Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Object, 0, len(s.objects))
	for _, o := range s.objects {
		if o.Selectable() {
			out = append(out, o)
		}
	}
	return out
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *scene) Bounds() common.AABB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b := common.EmptyAABB()
	for _, o := range s.objects {
		b = b.Union(o.Bounds())
	}
	return b
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = nil
	s.byName = make(map[string]Object)
}
