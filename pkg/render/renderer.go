// Package render draws the world in a GLFW window: the background starfield as
// points, the remaining collectibles as lit star meshes, and the HUD in the title bar.
package render

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-starfield/internal/openglhelper"
	"github.com/leterax/go-starfield/pkg/game"
	"github.com/leterax/go-starfield/pkg/geometry"
)

//go:embed shaders/*
var embeddedShaders embed.FS

// Settings configures the window and projection
type Settings struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Title     string  `toml:"title"`
	VSync     bool    `toml:"vsync"`
	FOV       float32 `toml:"fov"`
	Near      float32 `toml:"near"`
	Far       float32 `toml:"far"`
	ShaderDir string  `toml:"shader_dir"` // Load shaders from disk instead of the embedded copies
}

// DefaultSettings returns an 800x600 vsynced window with a 75° field of view
func DefaultSettings() Settings {
	return Settings{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Title:  DefaultTitle,
		VSync:  true,
		FOV:    DefaultFOV,
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
}

// Validate reports settings the window or projection cannot use
func (s Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", game.ErrInvalidSettings, s.Width, s.Height)
	case s.FOV <= 0 || s.FOV >= 180:
		return fmt.Errorf("%w: fov %v", game.ErrInvalidSettings, s.FOV)
	case s.Near <= 0 || s.Far <= s.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", game.ErrInvalidSettings, s.Near, s.Far)
	}
	return nil
}

// KeyHandler receives key identifiers from the window
type KeyHandler interface {
	KeyDown(key string)
	KeyUp(key string)
}

// Renderer owns the window and GL resources. It is the game's scene, frame
// renderer, HUD text sink and display-loop scheduler. All methods must be
// called from the thread that created it.
type Renderer struct {
	window *openglhelper.Window
	camera *Camera

	starShader  *openglhelper.Shader
	pointShader *openglhelper.Shader
	starMesh    *openglhelper.Mesh
	starfield   *openglhelper.PointCloud

	visible map[int]bool // Collectible IDs in the scene
	hud     map[string]string
	keys    KeyHandler
	title   string
}

// NewRenderer opens the window, compiles the shaders and uploads the star mesh
func NewRenderer(settings Settings, star *geometry.Mesh) (*Renderer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	window, err := openglhelper.NewWindow(settings.Width, settings.Height, settings.Title, settings.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := window.Size()
	r := &Renderer{
		window:  window,
		camera:  NewCamera(settings.FOV, settings.Near, settings.Far, width, height),
		visible: make(map[int]bool),
		hud:     make(map[string]string),
		title:   settings.Title,
	}

	shaders, err := shaderFS(settings.ShaderDir)
	if err != nil {
		window.Close()
		return nil, err
	}

	r.starShader, err = openglhelper.LoadShaderFromFS(shaders, "star.vert", "star.frag")
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load star shader: %w", err)
	}
	r.pointShader, err = openglhelper.LoadShaderFromFS(shaders, "points.vert", "points.frag")
	if err != nil {
		r.starShader.Delete()
		window.Close()
		return nil, fmt.Errorf("failed to load starfield shader: %w", err)
	}

	r.starMesh = openglhelper.NewMesh(star.Interleaved(), star.Indices)
	r.starfield = openglhelper.NewPointCloud(nil)

	window.GLFWWindow().SetKeyCallback(r.keyCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(r.framebufferSizeCallback)

	return r, nil
}

// shaderFS returns the embedded shaders, or dir when set
func shaderFS(dir string) (fs.FS, error) {
	if dir == "" {
		sub, err := fs.Sub(embeddedShaders, "shaders")
		if err != nil {
			return nil, fmt.Errorf("failed to open embedded shaders: %w", err)
		}
		return sub, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("failed to open shader dir: %w", err)
	}
	return os.DirFS(dir), nil
}

// SetStarfield replaces the background points
func (r *Renderer) SetStarfield(points []mgl32.Vec3) {
	r.starfield.Delete()
	r.starfield = openglhelper.NewPointCloud(points)
}

// SetKeyHandler routes key events to h
func (r *Renderer) SetKeyHandler(h KeyHandler) {
	r.keys = h
}

// Add implements game.Scene
func (r *Renderer) Add(c *game.Collectible) {
	r.visible[c.ID] = true
}

// Remove implements game.Scene
func (r *Renderer) Remove(c *game.Collectible) {
	delete(r.visible, c.ID)
}

// SetText implements game.TextSink by showing the HUD in the title bar
func (r *Renderer) SetText(region, text string) {
	if r.hud[region] == text {
		return
	}
	r.hud[region] = text
	r.window.SetTitle(r.titleText())
}

// titleText joins the base title with the score and speed readouts
func (r *Renderer) titleText() string {
	parts := []string{r.title}
	for _, region := range []string{game.RegionScore, game.RegionSpeed} {
		if text, ok := r.hud[region]; ok {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " | ")
}

// Render implements game.FrameRenderer
func (r *Renderer) Render(w *game.World) {
	r.window.Clear(backgroundColor)

	view := w.Camera.ViewMatrix()
	projection := r.camera.ProjectionMatrix()

	r.pointShader.Use()
	r.pointShader.SetMat4("view", view)
	r.pointShader.SetMat4("projection", projection)
	r.pointShader.SetVec3("color", starfieldColor)
	r.pointShader.SetFloat("pointSize", StarfieldPointSize)
	r.starfield.Draw()

	r.starShader.Use()
	r.starShader.SetMat4("view", view)
	r.starShader.SetMat4("projection", projection)
	r.starShader.SetVec3("lightDir", lightDirection)
	for _, c := range w.Collectibles {
		if !r.visible[c.ID] {
			continue
		}
		r.starShader.SetMat4("model", c.Pose.Matrix())
		r.starShader.SetVec3("color", c.Color)
		r.starMesh.Draw()
	}
}

// Run implements game.Scheduler as the display loop: one frame per swap
// until the window closes or ctx is cancelled.
func (r *Renderer) Run(ctx context.Context, frame func() error) error {
	for !r.window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := frame(); err != nil {
			return err
		}
		r.window.SwapBuffers()
		r.window.PollEvents()
	}
	return nil
}

// Close frees all GL resources and destroys the window
func (r *Renderer) Close() {
	r.starfield.Delete()
	r.starMesh.Delete()
	r.pointShader.Delete()
	r.starShader.Delete()
	r.window.Close()
}

func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		r.window.SetShouldClose(true)
	}
	if r.keys == nil {
		return
	}

	id := KeyIdentifier(key, glfw.GetKeyName(key, scancode))
	switch action {
	case glfw.Press, glfw.Repeat:
		r.keys.KeyDown(id)
	case glfw.Release:
		r.keys.KeyUp(id)
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.UpdateProjectionMatrix(width, height)
}
