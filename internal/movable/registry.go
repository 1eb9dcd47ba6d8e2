// Package movable manages floating panels: z-ordered registries of windows
// and dialogs, prompt dialogs, and the pointer-driven drag/resize controller.
package movable

import (
	"sync"

	"github.com/Project-Sylos/Desktop98/internal/logging"
	"github.com/Project-Sylos/Desktop98/internal/metrics"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry operations, used as metric labels
const (
	OpOpen         = "open"
	OpClose        = "close"
	OpBringToFront = "bring_to_front"
	OpMove         = "move"
	OpResize       = "resize"
	OpMinimize     = "minimize"
	OpRestore      = "restore"
)

// Entity is a movable panel stored in a Registry
type Entity[T any] interface {
	Base() *types.Movable
	Clone() T
}

type subscriber[T any] struct {
	id int
	fn func([]T)
}

// Registry is the ordered collection of open entities of one kind.
// Entities keep open order; z-order lives in the ZIndex field and is
// drawn from a counter that only grows.
//
// Every mutation publishes a deep-copied snapshot to all subscribers
// before the next mutation starts. Callbacks may read the registry but
// must not mutate it synchronously.
type Registry[T Entity[T]] struct {
	name   string
	logger *zap.Logger

	// publishMu serializes mutate-then-deliver so snapshots arrive in order
	publishMu sync.Mutex

	mu          sync.RWMutex
	entities    []T
	counter     int
	subscribers []subscriber[T]
	nextSubID   int
}

// NewRegistry creates a registry whose first entity gets zBase+1
func NewRegistry[T Entity[T]](name string, zBase int) *Registry[T] {
	return &Registry[T]{
		name:    name,
		logger:  logging.Named("movable").With(zap.String("registry", name)),
		counter: zBase,
	}
}

// Name returns the registry name
func (r *Registry[T]) Name() string {
	return r.name
}

// Open appends a copy of entity with the next z-index and returns it.
// If an entity with the same id is open, it is brought to front instead and
// keeps its geometry. An empty id is replaced by a fresh uuid.
func (r *Registry[T]) Open(entity T) T {
	return r.open(entity, nil)
}

// open runs onExisting under the lock when the id is already open
func (r *Registry[T]) open(entity T, onExisting func(T)) T {
	var opened T
	r.mutate(OpOpen, func() bool {
		if i := r.indexLocked(entity.Base().ID); i >= 0 {
			existing := r.entities[i]
			r.bringToFrontLocked(existing)
			if onExisting != nil {
				onExisting(existing)
			}
			opened = existing.Clone()
			return true
		}

		stored := entity.Clone()
		base := stored.Base()
		if base.ID == "" {
			base.ID = uuid.New().String()
		}
		r.bringToFrontLocked(stored)
		r.entities = append(r.entities, stored)
		opened = stored.Clone()
		return true
	})
	return opened
}

// Close removes the entity with id. It publishes whether or not id was open.
func (r *Registry[T]) Close(id string) bool {
	var removed bool
	r.mutate(OpClose, func() bool {
		if i := r.indexLocked(id); i >= 0 {
			r.entities = append(r.entities[:i], r.entities[i+1:]...)
			removed = true
		}
		return true
	})
	return removed
}

// BringToFront gives the entity the next z-index
func (r *Registry[T]) BringToFront(id string) bool {
	return r.update(OpBringToFront, id, r.bringToFrontLocked)
}

// Move overwrites the position of the entity
func (r *Registry[T]) Move(id string, x, y int) bool {
	return r.update(OpMove, id, func(entity T) {
		base := entity.Base()
		base.X, base.Y = x, y
	})
}

// Resize overwrites the size of the entity
func (r *Registry[T]) Resize(id string, width, height int) bool {
	return r.update(OpResize, id, func(entity T) {
		base := entity.Base()
		base.Width, base.Height = width, height
	})
}

// Get returns a copy of the entity with id
func (r *Registry[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexLocked(id); i >= 0 {
		return r.entities[i].Clone(), true
	}
	var zero T
	return zero, false
}

// Geometry returns the shared movable fields of the entity with id
func (r *Registry[T]) Geometry(id string) (types.Movable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexLocked(id); i >= 0 {
		m := *r.entities[i].Base()
		m.Content = m.Content.Clone()
		return m, true
	}
	return types.Movable{}, false
}

// Snapshot returns a deep copy of the entities in open order
func (r *Registry[T]) Snapshot() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshotLocked()
}

// Frontmost returns the entity with the largest z-index
func (r *Registry[T]) Frontmost() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var front T
	found := false
	for _, entity := range r.entities {
		if !found || entity.Base().ZIndex > front.Base().ZIndex {
			front = entity
			found = true
		}
	}
	if !found {
		return front, false
	}
	return front.Clone(), true
}

// Len returns the number of open entities
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entities)
}

// Subscribe registers fn and immediately delivers the current snapshot.
// The returned function removes the subscription and is safe to call more than once.
func (r *Registry[T]) Subscribe(fn func([]T)) func() {
	r.publishMu.Lock()
	defer r.publishMu.Unlock()

	r.mu.Lock()
	r.nextSubID++
	id := r.nextSubID
	r.subscribers = append(r.subscribers, subscriber[T]{id: id, fn: fn})
	count := len(r.subscribers)
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	metrics.SetRegistrySubscribers(r.name, count)
	fn(snapshot)

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			for i, sub := range r.subscribers {
				if sub.id == id {
					r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
					break
				}
			}
			count := len(r.subscribers)
			r.mu.Unlock()
			metrics.SetRegistrySubscribers(r.name, count)
		})
	}
}

// update applies fn to the entity with id and publishes only when it exists
func (r *Registry[T]) update(op, id string, fn func(T)) bool {
	var found bool
	r.mutate(op, func() bool {
		if i := r.indexLocked(id); i >= 0 {
			fn(r.entities[i])
			found = true
		}
		return found
	})
	return found
}

// mutate runs fn under the state lock and, when fn reports a change,
// delivers a snapshot to every subscriber before returning.
func (r *Registry[T]) mutate(op string, fn func() bool) {
	r.publishMu.Lock()
	defer r.publishMu.Unlock()

	r.mu.Lock()
	publish := fn()
	count := len(r.entities)
	var subs []subscriber[T]
	if publish {
		subs = make([]subscriber[T], len(r.subscribers))
		copy(subs, r.subscribers)
	}
	snapshots := make([][]T, len(subs))
	for i := range subs {
		snapshots[i] = r.snapshotLocked()
	}
	r.mu.Unlock()

	metrics.RecordRegistryOp(r.name, op)
	metrics.SetRegistryEntities(r.name, count)
	r.logger.Debug("registry mutated",
		zap.String("op", op),
		zap.Int("entities", count),
		zap.Bool("published", publish),
	)

	for i, sub := range subs {
		sub.fn(snapshots[i])
	}
}

func (r *Registry[T]) bringToFrontLocked(entity T) {
	r.counter++
	entity.Base().ZIndex = r.counter
}

func (r *Registry[T]) indexLocked(id string) int {
	for i, entity := range r.entities {
		if entity.Base().ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry[T]) snapshotLocked() []T {
	snapshot := make([]T, len(r.entities))
	for i, entity := range r.entities {
		snapshot[i] = entity.Clone()
	}
	return snapshot
}
