package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	flexbridge "github.com/onebit/flexbridge"
	flexerrors "github.com/onebit/flexbridge/errors"
)

// Config holds configuration for backend creation
type Config struct {
	// MemoryLimitPages sets the maximum guest memory in pages (64KB each).
	// 0 means the wazero default.
	MemoryLimitPages uint32
}

// Backend runs the guest layout module and implements
// flexbridge.Backend. Refs returned by the guest are pointers into its
// linear memory; the backend treats them as opaque tokens.
type Backend struct {
	ctx      context.Context
	runtime  wazero.Runtime
	instance api.Module
	caps     capabilities
}

// New instantiates the guest module and resolves its export table.
func New(ctx context.Context, guest []byte) (*Backend, error) {
	return NewWithConfig(ctx, guest, nil)
}

// NewWithConfig creates a backend with custom runtime configuration.
func NewWithConfig(ctx context.Context, guest []byte, cfg *Config) (*Backend, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}

	r := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	// Guests built against wasi-libc import the preview1 host module.
	wasi_snapshot_preview1.MustInstantiate(ctx, r)

	compiled, err := r.CompileModule(ctx, guest)
	if err != nil {
		r.Close(ctx)
		return nil, flexerrors.Wrap(flexerrors.PhaseInit, flexerrors.KindInvalidData, err, "compile guest module")
	}

	mod, err := r.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		r.Close(ctx)
		return nil, flexerrors.Wrap(flexerrors.PhaseInit, flexerrors.KindInvalidData, err, "instantiate guest module")
	}

	caps, err := resolveCapabilities(mod)
	if err != nil {
		r.Close(ctx)
		return nil, flexerrors.Wrap(flexerrors.PhaseResolve, flexerrors.KindMissingExport, err, "resolve guest exports")
	}

	return &Backend{ctx: ctx, runtime: r, instance: mod, caps: caps}, nil
}

// Close tears down the guest instance and its runtime.
func (b *Backend) Close(ctx context.Context) error {
	return b.runtime.Close(ctx)
}

// call invokes a resolved export. Guest traps are absorbed: the call
// logs and returns no results, matching the backend's total-operation
// contract.
func (b *Backend) call(fn api.Function, args ...uint64) []uint64 {
	if fn == nil {
		return nil
	}
	res, err := fn.Call(b.ctx, args...)
	if err != nil {
		Logger().Warn("guest call failed",
			zap.String("export", fn.Definition().Name()),
			zap.Error(err))
		return nil
	}
	return res
}

func (b *Backend) callRef(fn api.Function, args ...uint64) uint32 {
	res := b.call(fn, args...)
	if len(res) == 0 {
		return 0
	}
	return uint32(res[0])
}

func (b *Backend) callF32(fn api.Function, args ...uint64) float32 {
	res := b.call(fn, args...)
	if len(res) == 0 {
		return 0
	}
	return api.DecodeF32(res[0])
}

// CreateConfig implements flexbridge.Backend.
func (b *Backend) CreateConfig() flexbridge.ConfigRef {
	return flexbridge.ConfigRef(b.callRef(b.caps.configNew))
}

// DestroyConfig implements flexbridge.Backend.
func (b *Backend) DestroyConfig(ref flexbridge.ConfigRef) {
	b.call(b.caps.configFree, uint64(ref))
}

// ConfigSetUseWebDefaults implements flexbridge.Backend. Degrades to a
// no-op when the guest does not export the capability.
func (b *Backend) ConfigSetUseWebDefaults(ref flexbridge.ConfigRef, on bool) {
	if b.caps.configSetWebDefaults == nil {
		debugf("guest has no %s export, ignoring", expConfigSetWebDefaults)
		return
	}
	var v uint64
	if on {
		v = 1
	}
	b.call(b.caps.configSetWebDefaults, uint64(ref), v)
}

// CreateNode implements flexbridge.Backend.
func (b *Backend) CreateNode(cfg flexbridge.ConfigRef) flexbridge.NodeRef {
	if cfg != 0 && b.caps.nodeNewWithConfig != nil {
		return flexbridge.NodeRef(b.callRef(b.caps.nodeNewWithConfig, uint64(cfg)))
	}
	return flexbridge.NodeRef(b.callRef(b.caps.nodeNew))
}

// DestroyNode implements flexbridge.Backend.
func (b *Backend) DestroyNode(ref flexbridge.NodeRef) {
	b.call(b.caps.nodeFree, uint64(ref))
}

// DestroySubtree implements flexbridge.Backend.
func (b *Backend) DestroySubtree(ref flexbridge.NodeRef) {
	b.call(b.caps.nodeFreeRecursive, uint64(ref))
}

// InsertChild implements flexbridge.Backend.
func (b *Backend) InsertChild(parent, child flexbridge.NodeRef, index int) {
	b.call(b.caps.insertChild, uint64(parent), uint64(child), uint64(uint32(index)))
}

// RemoveChild implements flexbridge.Backend.
func (b *Backend) RemoveChild(parent, child flexbridge.NodeRef) {
	b.call(b.caps.removeChild, uint64(parent), uint64(child))
}

// ChildCount implements flexbridge.Backend.
func (b *Backend) ChildCount(ref flexbridge.NodeRef) int {
	return int(b.callRef(b.caps.childCount, uint64(ref)))
}

// ChildAt implements flexbridge.Backend.
func (b *Backend) ChildAt(ref flexbridge.NodeRef, index int) flexbridge.NodeRef {
	return flexbridge.NodeRef(b.callRef(b.caps.getChild, uint64(ref), uint64(uint32(index))))
}

// SetEnum implements flexbridge.Backend.
func (b *Backend) SetEnum(ref flexbridge.NodeRef, prop flexbridge.EnumProp, v int32) {
	b.call(b.caps.enums[prop], uint64(ref), uint64(uint32(v)))
}

// SetFloat implements flexbridge.Backend.
func (b *Backend) SetFloat(ref flexbridge.NodeRef, prop flexbridge.FloatProp, v float32) {
	b.call(b.caps.floats[prop], uint64(ref), api.EncodeF32(v))
}

// SetDimension implements flexbridge.Backend. Percent and auto units
// route to the guest's unit-variant exports; a missing variant is a
// logged no-op rather than a wrong-unit write.
func (b *Backend) SetDimension(ref flexbridge.NodeRef, prop flexbridge.DimensionProp, v flexbridge.Value) {
	fns := b.caps.dims[prop]
	switch v.Unit {
	case flexbridge.UnitPercent:
		if fns.percent == nil {
			debugf("guest has no percent variant for dimension prop %d", prop)
			return
		}
		b.call(fns.percent, uint64(ref), api.EncodeF32(v.Value))
	case flexbridge.UnitAuto:
		if fns.auto == nil {
			debugf("guest has no auto variant for dimension prop %d", prop)
			return
		}
		b.call(fns.auto, uint64(ref))
	default:
		b.call(fns.point, uint64(ref), api.EncodeF32(v.Value))
	}
}

// SetEdge implements flexbridge.Backend.
func (b *Backend) SetEdge(ref flexbridge.NodeRef, prop flexbridge.EdgeProp, edge flexbridge.Edge, v flexbridge.Value) {
	fns := b.caps.edges[prop]
	switch v.Unit {
	case flexbridge.UnitPercent:
		if fns.percent == nil {
			debugf("guest has no percent variant for edge prop %d", prop)
			return
		}
		b.call(fns.percent, uint64(ref), uint64(uint32(edge)), api.EncodeF32(v.Value))
	case flexbridge.UnitAuto:
		if fns.auto == nil {
			debugf("guest has no auto variant for edge prop %d", prop)
			return
		}
		b.call(fns.auto, uint64(ref), uint64(uint32(edge)))
	default:
		b.call(fns.point, uint64(ref), uint64(uint32(edge)), api.EncodeF32(v.Value))
	}
}

// CalculateLayout implements flexbridge.Backend.
func (b *Backend) CalculateLayout(ref flexbridge.NodeRef, availWidth, availHeight float32, dir flexbridge.Direction) {
	b.call(b.caps.calculateLayout,
		uint64(ref),
		api.EncodeF32(availWidth),
		api.EncodeF32(availHeight),
		uint64(uint32(dir)))
}

// Layout implements flexbridge.Backend.
func (b *Backend) Layout(ref flexbridge.NodeRef) flexbridge.Rect {
	return flexbridge.Rect{
		Left:   b.callF32(b.caps.layoutLeft, uint64(ref)),
		Top:    b.callF32(b.caps.layoutTop, uint64(ref)),
		Width:  b.callF32(b.caps.layoutWidth, uint64(ref)),
		Height: b.callF32(b.caps.layoutHeight, uint64(ref)),
	}
}

var _ flexbridge.Backend = (*Backend)(nil)
