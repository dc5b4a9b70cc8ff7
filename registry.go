package cavemat

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// MaterialFunc computes the material record for one shaded point. Pure:
// the same position and time uniform always produce the same record.
type MaterialFunc func(p mgl32.Vec3, time float32) VoxelMaterial

// Registry maps voxel type ids to material recipes. Dispatch through
// MaterialFor is total over all 32-bit ids: sentinels and unknown ids
// resolve to fixed fallback renderings instead of failing.
//
// Register everything up front; once rendering starts, MaterialFor is safe
// to call from any number of goroutines concurrently.
type Registry struct {
	log   Logger
	funcs map[TypeId]MaterialFunc
}

func NewRegistry(log Logger) *Registry {
	if log == nil {
		log = NewNopLogger()
	}
	return &Registry{
		log:   log,
		funcs: make(map[TypeId]MaterialFunc),
	}
}

// DefaultRegistry returns a registry with the stock rock palette
// registered under ids 0-2.
func DefaultRegistry(log Logger) *Registry {
	r := NewRegistry(log)
	r.Register(BrownRock, Rock(BrownRockParams))
	r.Register(YellowRock, Rock(YellowRockParams))
	r.Register(ShinyGreenRock, Rock(ShinyGreenRockParams))
	return r
}

// Register binds a recipe to an id. Sentinel ids are reserved and refused;
// re-registering an id replaces the previous recipe.
func (r *Registry) Register(id TypeId, fn MaterialFunc) error {
	if id.IsSentinel() {
		return fmt.Errorf("register %s: id %d is a reserved sentinel", id.Name(), uint32(id))
	}
	if fn == nil {
		return fmt.Errorf("register %s: nil material func", id.Name())
	}
	if _, exists := r.funcs[id]; exists {
		r.log.Warnf("material id %d (%s) re-registered, replacing previous recipe", uint32(id), id.Name())
	}
	r.funcs[id] = fn
	return nil
}

// Registered returns the registered ids in ascending order.
func (r *Registry) Registered() []TypeId {
	ids := make([]TypeId, 0, len(r.funcs))
	for id := range r.funcs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MaterialFor evaluates the material for id at p. Boundary ids render the
// shared boundary recipe; Invalid, Unset and unregistered ids render
// tinted diagnostic checkerboards so bad mesh data is visible instead of
// silently wrong.
func (r *Registry) MaterialFor(id TypeId, p mgl32.Vec3, time float32) VoxelMaterial {
	switch id {
	case Boundary, FakeBoundary:
		return boundaryFunc(p, time)
	case Invalid:
		return checkerboard(p, invalidTint)
	case Unset:
		return checkerboard(p, unsetTint)
	}
	if fn, ok := r.funcs[id]; ok {
		return fn(p, time)
	}
	return checkerboard(p, unknownTint)
}
