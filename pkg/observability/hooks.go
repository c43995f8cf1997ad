// Package observability provides hooks for instrumenting weave generation.
//
// The package uses a simple hooks pattern: a hook interface with a no-op
// default implementation, registered by main at startup. Libraries call the
// hooks to emit events without taking a dependency on any logging or metrics
// backend, which also avoids import cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetGeneratorHooks(&myHooks{})
//
// The generation pipeline emits one event pair per stage:
//
//	observability.Generator().OnStageStart(observability.StageFields)
//	// ... build fields ...
//	observability.Generator().OnStageComplete(observability.StageFields, elapsed)
package observability

import (
	"sync"
	"time"
)

// Stage identifies one step of the generation pipeline.
type Stage string

// Pipeline stages in execution order.
const (
	StageBands  Stage = "bands"
	StageFields Stage = "fields"
	StageVoids  Stage = "voids"
	StageEdges  Stage = "edges"
	StageGlyphs Stage = "glyphs"
)

// GeneratorHooks receives events from the generation pipeline.
type GeneratorHooks interface {
	// OnStageStart is called before a pipeline stage runs.
	OnStageStart(stage Stage)

	// OnStageComplete is called after a stage finishes.
	OnStageComplete(stage Stage, duration time.Duration)
}

// NopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NopGeneratorHooks struct{}

// OnStageStart implements GeneratorHooks.
func (NopGeneratorHooks) OnStageStart(Stage) {}

// OnStageComplete implements GeneratorHooks.
func (NopGeneratorHooks) OnStageComplete(Stage, time.Duration) {}

var (
	mu             sync.RWMutex
	generatorHooks GeneratorHooks = NopGeneratorHooks{}
)

// SetGeneratorHooks registers the hooks implementation. Call once at startup
// before any generation runs.
func SetGeneratorHooks(h GeneratorHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		generatorHooks = NopGeneratorHooks{}
		return
	}
	generatorHooks = h
}

// Generator returns the registered hooks (never nil).
func Generator() GeneratorHooks {
	mu.RLock()
	defer mu.RUnlock()
	return generatorHooks
}
