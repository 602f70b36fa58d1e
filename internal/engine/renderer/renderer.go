// Package renderer draws a composed scene with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/camera"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/framebuffer"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/mesh"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/renderer/shaders"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/shader"
	"github.com/hnrq/scroll-based-animation-sub001/internal/engine/texture"
	"github.com/hnrq/scroll-based-animation-sub001/internal/logger"
	"github.com/hnrq/scroll-based-animation-sub001/internal/scene"
	"github.com/hnrq/scroll-based-animation-sub001/pkg/math"
)

// Config holds renderer configuration. Width and Height are in window
// pixels; DrawableWidth and DrawableHeight are the window's default
// framebuffer size in device pixels.
type Config struct {
	Width          int
	Height         int
	PixelRatio     float64
	DrawableWidth  int32
	DrawableHeight int32
	ClearColor     colorful.Color
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

type gpuPoints struct {
	vao, vbo uint32
	count    int32
}

// Renderer draws into an offscreen target sized in device pixels and
// blits it to the window.
type Renderer struct {
	config Config

	toon   *shader.Program
	points *shader.Program

	meshes    map[*mesh.Geometry]*gpuMesh
	particles map[*scene.ParticleField]*gpuPoints
	gradients map[*texture.Gradient]uint32
	fallback  *texture.Gradient

	target *framebuffer.Framebuffer
}

// New creates a renderer. It must be called after the OpenGL context is
// current.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	r := &Renderer{
		config:    cfg,
		meshes:    make(map[*mesh.Geometry]*gpuMesh),
		particles: make(map[*scene.ParticleField]*gpuPoints),
		gradients: make(map[*texture.Gradient]uint32),
	}

	var err error
	if r.toon, err = shader.Compile("toon", shaders.ToonVertexShader, shaders.ToonFragmentShader); err != nil {
		return nil, err
	}
	if r.points, err = shader.Compile("points", shaders.PointsVertexShader, shaders.PointsFragmentShader); err != nil {
		r.toon.Delete()
		return nil, err
	}

	w, h := framebuffer.ScaledSize(cfg.Width, cfg.Height, cfg.PixelRatio)
	if r.target, err = framebuffer.New(w, h); err != nil {
		r.toon.Delete()
		r.points.Delete()
		return nil, err
	}

	return r, nil
}

// Resize sets the output size in window pixels, the pixel ratio and the
// drawable size the frame is blitted to.
func (r *Renderer) Resize(width, height int, pixelRatio float64, drawableWidth, drawableHeight int32) {
	r.config.Width = width
	r.config.Height = height
	r.config.PixelRatio = pixelRatio
	r.config.DrawableWidth = drawableWidth
	r.config.DrawableHeight = drawableHeight

	w, h := framebuffer.ScaledSize(width, height, pixelRatio)
	r.target.Resize(w, h)

	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float64("pixel_ratio", pixelRatio),
		zap.Int32("target_width", w),
		zap.Int32("target_height", h),
		zap.Int32("drawable_width", drawableWidth),
		zap.Int32("drawable_height", drawableHeight),
	)
}

// Render draws one frame of s seen through cam.
func (r *Renderer) Render(s *scene.Scene, cam camera.View) error {
	r.target.Bind()
	c := r.config.ClearColor
	r.target.Clear(float32(c.R), float32(c.G), float32(c.B), 1)

	view := cam.ViewMatrix()
	projection := cam.ProjectionMatrix()

	if err := r.drawObjects(s, &view, &projection); err != nil {
		return err
	}
	if s.Particles != nil && s.Particles.Count > 0 {
		r.drawParticles(s.Particles, &view, &projection)
	}

	r.target.BlitToDefault(r.config.DrawableWidth, r.config.DrawableHeight)

	return checkError("render")
}

func (r *Renderer) drawObjects(s *scene.Scene, view, projection *math.Mat4) error {
	if len(s.Objects) == 0 {
		return nil
	}

	r.toon.Use()
	r.toon.SetMat4("uView", (*[16]float32)(view))
	r.toon.SetMat4("uProjection", (*[16]float32)(projection))
	r.toon.SetVec3("uLightDirection", s.Light.Direction())
	r.toon.SetVec3("uLightColor", s.Light.Radiance())

	gl.ActiveTexture(gl.TEXTURE0)
	r.toon.SetInt("uGradient", 0)

	for _, o := range s.Objects {
		gm, err := r.uploadMesh(o.Geometry)
		if err != nil {
			return err
		}
		gl.BindTexture(gl.TEXTURE_2D, r.uploadGradient(o.Material.Gradient))

		model := o.ModelMatrix()
		r.toon.SetMat4("uModel", (*[16]float32)(&model))
		r.toon.SetVec3("uColor", linear(o.Material.Color))

		gl.BindVertexArray(gm.vao)
		gl.DrawElements(gl.TRIANGLES, gm.indexCount, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) drawParticles(p *scene.ParticleField, view, projection *math.Mat4) {
	gp := r.uploadParticles(p)
	_, h := r.target.Size()

	r.points.Use()
	r.points.SetMat4("uView", (*[16]float32)(view))
	r.points.SetMat4("uProjection", (*[16]float32)(projection))
	r.points.SetFloat("uSize", float32(p.Material.Size))
	r.points.SetFloat("uScale", float32(h)/2)
	r.points.SetVec3("uColor", linear(p.Material.Color))

	gl.BindVertexArray(gp.vao)
	gl.DrawArrays(gl.POINTS, 0, gp.count)
	gl.BindVertexArray(0)
}

func (r *Renderer) uploadMesh(g *mesh.Geometry) (*gpuMesh, error) {
	if gm, ok := r.meshes[g]; ok {
		return gm, nil
	}
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return nil, fmt.Errorf("geometry %q is empty", g.Name)
	}

	data := g.Interleaved()
	gm := &gpuMesh{indexCount: int32(len(g.Indices))}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	stride := int32(mesh.FloatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.meshes[g] = gm
	logger.Debug("geometry uploaded",
		zap.String("name", g.Name),
		zap.Int("vertices", len(g.Vertices)),
		zap.Int("triangles", g.TriangleCount()),
	)
	return gm, nil
}

func (r *Renderer) uploadParticles(p *scene.ParticleField) *gpuPoints {
	if gp, ok := r.particles[p]; ok {
		return gp
	}
	gp := &gpuPoints{count: int32(p.Count)}

	gl.GenVertexArrays(1, &gp.vao)
	gl.BindVertexArray(gp.vao)

	gl.GenBuffers(1, &gp.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gp.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.Positions)*4, unsafe.Pointer(&p.Positions[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	r.particles[p] = gp
	return gp
}

func (r *Renderer) uploadGradient(g *texture.Gradient) uint32 {
	if g == nil {
		if r.fallback == nil {
			r.fallback = texture.DefaultGradient()
		}
		g = r.fallback
	}
	if tex, ok := r.gradients[g]; ok {
		return tex
	}

	img := g.Image
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	r.gradients[g] = tex
	logger.Debug("gradient uploaded", zap.String("source", g.Source), zap.Int("steps", g.Steps()))
	return tex
}

// Capture returns the last rendered frame as bottom-up RGBA rows.
func (r *Renderer) Capture() (pixels []byte, width, height int) {
	w, h := r.target.Size()
	return r.target.ReadPixels(), int(w), int(h)
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, gm := range r.meshes {
		gl.DeleteVertexArrays(1, &gm.vao)
		gl.DeleteBuffers(1, &gm.vbo)
		gl.DeleteBuffers(1, &gm.ebo)
	}
	for _, gp := range r.particles {
		gl.DeleteVertexArrays(1, &gp.vao)
		gl.DeleteBuffers(1, &gp.vbo)
	}
	for _, tex := range r.gradients {
		gl.DeleteTextures(1, &tex)
	}
	r.toon.Delete()
	r.points.Delete()
	r.target.Destroy()
}

// linear converts an sRGB color to linear RGB.
func linear(c colorful.Color) [3]float32 {
	r, g, b := c.LinearRgb()
	return [3]float32{float32(r), float32(g), float32(b)}
}

func checkError(stage string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		// Drain the queue so the next frame starts clean.
		for gl.GetError() != gl.NO_ERROR {
		}
		return fmt.Errorf("%s: GL error 0x%x", stage, code)
	}
	return nil
}
