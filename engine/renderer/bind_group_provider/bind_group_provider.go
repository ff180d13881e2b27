// Package bind_group_provider holds the GPU resources a draw call binds: uniform buffers and
// their bind group, and the vertex buffer with its vertex count.
package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is a debug label prefixed onto the GPU objects created for this provider.
	label string

	// The following fields are GPU allocated resources and must be released when no longer
	// needed. They are populated by the renderer backend, not by the caller.

	// bindGroup is the GPU bind group created for this provider, or nil if not initialized.
	bindGroup *wgpu.BindGroup
	// bindGroupLayout is the layout bindGroup was created against.
	bindGroupLayout *wgpu.BindGroupLayout
	// buffers holds the GPU buffers created for this provider, keyed by binding index.
	buffers map[int]*wgpu.Buffer

	// vertexBuffer holds interleaved vertices for a non-indexed draw.
	vertexBuffer *wgpu.Buffer
	// vertexCount is the number of vertices drawn from vertexBuffer.
	vertexCount int
	// vertexCapacity is the size of vertexBuffer in bytes.
	vertexCapacity uint64
}

// BindGroupProvider owns the GPU resources behind one draw call's bindings.
type BindGroupProvider interface {
	// Release frees every GPU resource held by the provider.
	Release()

	// Label returns the debug label.
	//
	// Returns:
	//   - string: the label
	Label() string

	// BindGroup returns the bind group, or nil before initialization.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the layout the bind group was created against.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the layout
	BindGroupLayout() *wgpu.BindGroupLayout

	// Buffer returns the buffer bound at a binding index, or nil.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer
	Buffer(binding int) *wgpu.Buffer

	// VertexBuffer returns the vertex buffer, or nil before upload.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer
	VertexBuffer() *wgpu.Buffer

	// VertexCount returns the number of vertices to draw.
	//
	// Returns:
	//   - int: vertex count
	VertexCount() int

	// VertexCapacity returns the vertex buffer size in bytes.
	//
	// Returns:
	//   - uint64: capacity in bytes
	VertexCapacity() uint64

	// SetBindGroup stores the bind group and its layout after creation by the backend.
	//
	// Parameters:
	//   - bg: the created bind group
	//   - bgl: the layout it was created against
	SetBindGroup(bg *wgpu.BindGroup, bgl *wgpu.BindGroupLayout)

	// SetBuffer stores a GPU buffer for a binding index, releasing any previous one.
	//
	// Parameters:
	//   - binding: the binding index
	//   - buf: the created buffer
	SetBuffer(binding int, buf *wgpu.Buffer)

	// SetVertexBuffer stores the vertex buffer, its byte capacity and the vertex count,
	// releasing any previous buffer.
	//
	// Parameters:
	//   - buf: the created vertex buffer
	//   - capacity: buffer size in bytes
	//   - count: vertices to draw
	SetVertexBuffer(buf *wgpu.Buffer, capacity uint64, count int)
}

// Compile-time check that bindGroupProvider implements BindGroupProvider
var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates an empty provider.
//
// Parameters:
//   - label: debug label for the GPU objects created for this provider
//
// Returns:
//   - BindGroupProvider: the provider
func NewBindGroupProvider(label string) BindGroupProvider {
	return &bindGroupProvider{
		label:   label,
		buffers: make(map[int]*wgpu.Buffer),
	}
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *bindGroupProvider) BindGroupLayout() *wgpu.BindGroupLayout {
	return p.bindGroupLayout
}

func (p *bindGroupProvider) Buffer(binding int) *wgpu.Buffer {
	return p.buffers[binding]
}

func (p *bindGroupProvider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *bindGroupProvider) VertexCount() int {
	return p.vertexCount
}

func (p *bindGroupProvider) VertexCapacity() uint64 {
	return p.vertexCapacity
}

func (p *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup, bgl *wgpu.BindGroupLayout) {
	if p.bindGroup != nil && p.bindGroup != bg {
		p.bindGroup.Release()
	}
	p.bindGroup = bg
	p.bindGroupLayout = bgl
}

func (p *bindGroupProvider) SetBuffer(binding int, buf *wgpu.Buffer) {
	if old, ok := p.buffers[binding]; ok && old != nil && old != buf {
		old.Release()
	}
	p.buffers[binding] = buf
}

func (p *bindGroupProvider) SetVertexBuffer(buf *wgpu.Buffer, capacity uint64, count int) {
	if p.vertexBuffer != nil && p.vertexBuffer != buf {
		p.vertexBuffer.Release()
	}
	p.vertexBuffer = buf
	p.vertexCapacity = capacity
	p.vertexCount = count
}

func (p *bindGroupProvider) Release() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.bindGroupLayout != nil {
		p.bindGroupLayout.Release()
		p.bindGroupLayout = nil
	}
	for k, buf := range p.buffers {
		if buf != nil {
			buf.Release()
		}
		delete(p.buffers, k)
	}
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
	p.vertexCount = 0
	p.vertexCapacity = 0
}
