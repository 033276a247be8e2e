// Package gpuformat maps the layout metadata this engine already derives onto the WebGPU
// binding concepts from github.com/cogentcore/webgpu/wgpu: a bind group layout entry
// describing a uniform or storage buffer binding, and a vertex buffer layout describing a
// struct's fields as per-vertex attributes. It never submits work to a GPU; it only
// describes shapes already computed by packages schema and layout, turning that type
// information into wgpu.BindGroupLayoutEntry and wgpu.VertexBufferLayout values.
package gpuformat
