package game

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is a position plus Euler rotation applied in X, Y, Z order
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
}

// RotationMatrix returns the pose's rotation as a homogeneous matrix
func (p Pose) RotationMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(p.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(p.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(p.Rotation[2]))
}

// Matrix returns the local-to-world transform
func (p Pose) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(p.Position.Elem()).Mul4(p.RotationMatrix())
}

// ViewMatrix returns the world-to-view transform for a camera at this pose
func (p Pose) ViewMatrix() mgl32.Mat4 {
	return p.Matrix().Inv()
}

// Forward returns the direction the pose looks along (local -Z)
func (p Pose) Forward() mgl32.Vec3 {
	return p.RotationMatrix().Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
}

// Translate moves the pose along its own rotated axes
func (p *Pose) Translate(local mgl32.Vec3) {
	p.Position = p.Position.Add(p.RotationMatrix().Mul4x1(local.Vec4(0)).Vec3())
}

// Rotate adds delta to the Euler angles
func (p *Pose) Rotate(delta mgl32.Vec3) {
	p.Rotation = p.Rotation.Add(delta)
}
