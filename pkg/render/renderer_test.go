package render

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-starfield/pkg/game"
)

func TestKeyIdentifier(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		name string
		want string
	}{
		{glfw.KeyW, "w", "w"},
		{glfw.KeyS, "", "s"},
		{glfw.KeyUp, "", "ArrowUp"},
		{glfw.KeyRight, "", "ArrowRight"},
		{glfw.KeyEqual, "=", "+"},
		{glfw.KeyKPAdd, "+", "+"},
		{glfw.KeyMinus, "-", "-"},
		{glfw.KeyKPSubtract, "-", "-"},
		{glfw.KeyQ, "q", "q"},
		{glfw.KeyF5, "", "Key294"},
	}

	for _, tt := range tests {
		if got := KeyIdentifier(tt.key, tt.name); got != tt.want {
			t.Errorf("KeyIdentifier(%d, %q) = %q, want %q", tt.key, tt.name, got, tt.want)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		ok     bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"zero width", func(s *Settings) { s.Width = 0 }, false},
		{"flat fov", func(s *Settings) { s.FOV = 180 }, false},
		{"far before near", func(s *Settings) { s.Far = 0.05 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			err := s.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, game.ErrInvalidSettings) {
				t.Fatalf("got %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestTitleText(t *testing.T) {
	r := &Renderer{title: "Starfield", hud: map[string]string{}}
	if got := r.titleText(); got != "Starfield" {
		t.Fatalf("title = %q", got)
	}

	r.hud[game.RegionSpeed] = "Speed: 0.10"
	r.hud[game.RegionScore] = "Score: 3"
	if got, want := r.titleText(), "Starfield | Score: 3 | Speed: 0.10"; got != want {
		t.Fatalf("title = %q, want %q", got, want)
	}
}

func TestEmbeddedShaders(t *testing.T) {
	shaders, err := shaderFS("")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"star.vert", "star.frag", "points.vert", "points.frag"} {
		if _, err := fs.Stat(shaders, name); err != nil {
			t.Errorf("missing shader %s: %v", name, err)
		}
	}

	if _, err := shaderFS(t.TempDir() + "/missing"); err == nil {
		t.Error("expected error for missing shader dir")
	}
}
