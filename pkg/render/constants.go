package render

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-starfield/pkg/game"
)

// Camera constants
const (
	DefaultFOV  = 75.0
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// Window constants
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Starfield"
)

// Draw constants
const (
	StarfieldPointSize = 1.0
)

var (
	backgroundColor = mgl32.Vec4{0, 0, 0, 1}
	starfieldColor  = mgl32.Vec3{1, 1, 1}
	lightDirection  = mgl32.Vec3{-0.3, -0.5, -1}
)

// keyNames maps GLFW keys to the identifiers the game understands
var keyNames = map[glfw.Key]string{
	glfw.KeyW:           game.KeyForward,
	glfw.KeyS:           game.KeyBack,
	glfw.KeyA:           game.KeyLeft,
	glfw.KeyD:           game.KeyRight,
	glfw.KeyUp:          game.KeyLookUp,
	glfw.KeyDown:        game.KeyLookDown,
	glfw.KeyLeft:        game.KeyLookLeft,
	glfw.KeyRight:       game.KeyLookRight,
	glfw.KeyEqual:       game.KeySpeedUp,
	glfw.KeyKPAdd:       game.KeySpeedUp,
	glfw.KeyMinus:       game.KeySpeedDown,
	glfw.KeyKPSubtract:  game.KeySpeedDown,
	glfw.KeyEscape:      "Escape",
	glfw.KeySpace:       " ",
	glfw.KeyEnter:       "Enter",
	glfw.KeyLeftShift:   "Shift",
	glfw.KeyRightShift:  "Shift",
	glfw.KeyLeftControl: "Control",
}

// KeyIdentifier maps a GLFW key to a key identifier. name is the layout name
// GLFW reports for printable keys and may be empty.
func KeyIdentifier(key glfw.Key, name string) string {
	if id, ok := keyNames[key]; ok {
		return id
	}
	if name != "" {
		return name
	}
	return fmt.Sprintf("Key%d", int(key))
}
