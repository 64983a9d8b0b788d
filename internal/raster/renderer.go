package raster

import (
	"runtime"
	"sync"

	"solar-raster/internal/material"
	"solar-raster/internal/pipeline"
	"solar-raster/internal/shade"
)

// vertexChunk is the number of vertices one worker transforms per job.
const vertexChunk = 256

// triangleChunk is the number of triangles one worker rasterizes per job.
const triangleChunk = 16

// Stats counts what one Render call did.
type Stats struct {
	Triangles int // assembled from the vertex buffer
	Culled    int // back-facing, degenerate or outside the depth range
	Fragments int // shaded and not discarded
	Written   int // passed the depth test
}

// Renderer draws vertex buffers into a FrameBuffer. Its scratch buffers are
// reused across calls, so a Renderer must not be shared between goroutines.
type Renderer struct {
	Workers int

	// Shader overrides the material chosen by Uniforms.Body when set.
	Shader material.Func

	transformed []pipeline.Vertex
	tris        []int
	frags       [][]pipeline.Fragment
}

// NewRenderer returns a renderer using the given number of workers;
// workers < 1 means one per CPU.
func NewRenderer(workers int) *Renderer {
	return &Renderer{Workers: workers}
}

func (r *Renderer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.NumCPU()
}

// Render draws verts, read three at a time as triangles, with the uniforms u.
// The framebuffer is written only on the calling goroutine, after all
// parallel work has finished, in triangle order.
func (r *Renderer) Render(fb *FrameBuffer, u *pipeline.Uniforms, verts []pipeline.Vertex) Stats {
	var st Stats
	if fb == nil || u == nil || len(verts) < 3 {
		return st
	}
	if u.ViewportWidth == 0 || u.ViewportHeight == 0 {
		filled := *u
		filled.ViewportWidth = float64(fb.Width)
		filled.ViewportHeight = float64(fb.Height)
		u = &filled
	}

	r.transform(u, verts)
	r.assemble(&st)

	if u.Wireframe {
		wire := u.WireColor
		if wire == (shade.Color{}) {
			wire = shade.White
		}
		// Back faces are outlined too; only vertices outside the depth
		// range, whose projection is meaningless, skip a triangle.
		for i := 0; i+2 < len(r.transformed); i += 3 {
			t := r.transformed[i : i+3]
			if !inDepthRange(&t[0]) || !inDepthRange(&t[1]) || !inDepthRange(&t[2]) {
				continue
			}
			DrawTriangleEdges(fb, t[0].ScreenPos, t[1].ScreenPos, t[2].ScreenPos, wire)
		}
		return st
	}

	r.rasterize(fb, u)

	for _, list := range r.frags {
		st.Fragments += len(list)
		for i := range list {
			f := &list[i]
			if fb.TestAndSetDepth(f.X, f.Y, f.Depth) {
				fb.SetPixel(f.X, f.Y, f.Color)
				st.Written++
			}
		}
	}
	return st
}

// transform runs the vertex stage over fixed chunks; each output slot is
// written by exactly one worker.
func (r *Renderer) transform(u *pipeline.Uniforms, verts []pipeline.Vertex) {
	n := len(verts) - len(verts)%3
	if cap(r.transformed) < n {
		r.transformed = make([]pipeline.Vertex, n)
	}
	r.transformed = r.transformed[:n]

	stage := pipeline.NewStage(u)
	parallel(r.workers(), (n+vertexChunk-1)/vertexChunk, func(job int) {
		lo := job * vertexChunk
		hi := min(lo+vertexChunk, n)
		for i := lo; i < hi; i++ {
			r.transformed[i] = stage.Transform(verts[i])
		}
	})
}

// assemble groups the transformed vertices into triangles and keeps the
// front-facing ones. r.tris holds the index of each kept triangle's first
// vertex.
func (r *Renderer) assemble(st *Stats) {
	r.tris = r.tris[:0]
	for i := 0; i+2 < len(r.transformed); i += 3 {
		st.Triangles++
		t := r.transformed[i : i+3]
		if !inDepthRange(&t[0]) || !inDepthRange(&t[1]) || !inDepthRange(&t[2]) {
			st.Culled++
			continue
		}
		if Classify(t[0].ScreenPos, t[1].ScreenPos, t[2].ScreenPos) != FrontFacing {
			st.Culled++
			continue
		}
		r.tris = append(r.tris, i)
	}
}

// rasterize fills r.frags with the shaded fragments of each kept triangle.
// Workers only read fb.ZBuf, which is not written until they all finish.
func (r *Renderer) rasterize(fb *FrameBuffer, u *pipeline.Uniforms) {
	n := len(r.tris)
	if cap(r.frags) < n {
		grown := make([][]pipeline.Fragment, n)
		copy(grown, r.frags[:cap(r.frags)])
		r.frags = grown
	}
	r.frags = r.frags[:n]

	shader := r.Shader
	if shader == nil {
		shader = material.Lookup(u.Body)
	}
	shader = material.WithPattern(shader, u.Pattern)

	parallel(r.workers(), (n+triangleChunk-1)/triangleChunk, func(job int) {
		lo := job * triangleChunk
		hi := min(lo+triangleChunk, n)
		for k := lo; k < hi; k++ {
			t := r.transformed[r.tris[k] : r.tris[k]+3]
			list := Rasterize(r.frags[k][:0], &t[0], &t[1], &t[2], fb.Width, fb.Height, fb.ZBuf)
			kept := list[:0]
			for _, f := range list {
				c := f.Color
				if shader != nil {
					c = shader(&f, &t[0], u)
				}
				if c.IsTransparent() {
					continue
				}
				f.Color = c
				kept = append(kept, f)
			}
			r.frags[k] = kept
		}
	})
}

// parallel calls fn(job) for every job in [0, jobs) on a pool of workers and
// waits for all of them.
func parallel(workers, jobs int, fn func(job int)) {
	if jobs == 0 {
		return
	}
	if workers > jobs {
		workers = jobs
	}
	if workers <= 1 {
		for j := 0; j < jobs; j++ {
			fn(j)
		}
		return
	}

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				fn(j)
			}
		}()
	}
	for j := 0; j < jobs; j++ {
		jobChan <- j
	}
	close(jobChan)
	wg.Wait()
}
