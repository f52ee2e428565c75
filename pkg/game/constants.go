package game

// Key identifiers for keyboard input
const (
	KeyForward   = "w"
	KeyBack      = "s"
	KeyLeft      = "a"
	KeyRight     = "d"
	KeyLookUp    = "ArrowUp"
	KeyLookDown  = "ArrowDown"
	KeyLookLeft  = "ArrowLeft"
	KeyLookRight = "ArrowRight"
	KeySpeedUp   = "+"
	KeySpeedDown = "-"
)

// World defaults
const (
	DefaultCollectibles    = 20
	DefaultSpawnRange      = 100.0 // Collectibles spawn in [-50, 50) on each axis
	DefaultStarfieldPoints = 10000
	DefaultStarfieldRange  = 2000.0
	DefaultCameraExtent    = 0.5 // Half-size of the camera's collision cube
)

// Motion defaults
const (
	DefaultSpeed         = 0.1
	MinSpeed             = 0.05
	MaxSpeed             = 1.0
	SpeedStep            = 0.05
	DefaultRotationSpeed = 0.002 // Radians per frame while a look key is held
	DefaultDamping       = 0.95
	DefaultSpin          = 0.01 // Cosmetic collectible rotation per frame
)
