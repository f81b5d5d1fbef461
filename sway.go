package sway

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a 4D vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Quat is a rotation quaternion. Interpolation is normalized lerp along the
// shortest arc, which is stable and allocation-free; callers needing true
// slerp should animate an angle instead.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the identity rotation.
var QuatIdentity = Quat{0, 0, 0, 1}

// ValueKind identifies the payload type carried by a Value.
type ValueKind uint8

const (
	KindFloat ValueKind = iota // single float64
	KindVec2                   // 2-component vector
	KindVec3                   // 3-component vector
	KindVec4                   // 4-component vector
	KindColor                  // RGBA color
	KindQuat                   // rotation quaternion
)

// Value is the payload moved by a tween: a tagged union over every
// interpolable type. It is a plain value — passing it to callbacks never
// allocates.
type Value struct {
	Kind       ValueKind
	X, Y, Z, W float64
}

// FloatValue wraps a float64 in a Value.
func FloatValue(v float64) Value {
	return Value{Kind: KindFloat, X: v}
}

// Vec2Value wraps a Vec2 in a Value.
func Vec2Value(v Vec2) Value {
	return Value{Kind: KindVec2, X: v.X, Y: v.Y}
}

// Vec3Value wraps a Vec3 in a Value.
func Vec3Value(v Vec3) Value {
	return Value{Kind: KindVec3, X: v.X, Y: v.Y, Z: v.Z}
}

// Vec4Value wraps a Vec4 in a Value.
func Vec4Value(v Vec4) Value {
	return Value{Kind: KindVec4, X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// ColorValue wraps a Color in a Value.
func ColorValue(c Color) Value {
	return Value{Kind: KindColor, X: c.R, Y: c.G, Z: c.B, W: c.A}
}

// QuatValue wraps a Quat in a Value.
func QuatValue(q Quat) Value {
	return Value{Kind: KindQuat, X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// Float returns the payload as a float64.
func (v Value) Float() float64 {
	return v.X
}

// Vec2 returns the payload as a Vec2.
func (v Value) Vec2() Vec2 {
	return Vec2{v.X, v.Y}
}

// Vec3 returns the payload as a Vec3.
func (v Value) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Vec4 returns the payload as a Vec4.
func (v Value) Vec4() Vec4 {
	return Vec4{v.X, v.Y, v.Z, v.W}
}

// Color returns the payload as a Color.
func (v Value) Color() Color {
	return Color{v.X, v.Y, v.Z, v.W}
}

// Quat returns the payload as a Quat.
func (v Value) Quat() Quat {
	return Quat{v.X, v.Y, v.Z, v.W}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpValue interpolates componentwise between a and b by t. Quaternions use
// normalized lerp with a shortest-path sign flip. The result carries a's kind.
func lerpValue(a, b Value, t float64) Value {
	if a.Kind == KindQuat {
		return lerpQuat(a, b, t)
	}
	return Value{
		Kind: a.Kind,
		X:    lerp(a.X, b.X, t),
		Y:    lerp(a.Y, b.Y, t),
		Z:    lerp(a.Z, b.Z, t),
		W:    lerp(a.W, b.W, t),
	}
}

func lerpQuat(a, b Value, t float64) Value {
	// Flip to the shortest arc.
	dot := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	if dot < 0 {
		b.X, b.Y, b.Z, b.W = -b.X, -b.Y, -b.Z, -b.W
	}
	v := Value{
		Kind: KindQuat,
		X:    lerp(a.X, b.X, t),
		Y:    lerp(a.Y, b.Y, t),
		Z:    lerp(a.Z, b.Z, t),
		W:    lerp(a.W, b.W, t),
	}
	mag := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
	if mag > 0 {
		v.X /= mag
		v.Y /= mag
		v.Z /= mag
		v.W /= mag
	}
	return v
}

// offsetValue returns from + (to-from)*k componentwise. Used by the
// Incremental cycle mode to shift each cycle's endpoints by the base delta.
func offsetValue(from, to Value, k float64) Value {
	return Value{
		Kind: from.Kind,
		X:    from.X + (to.X-from.X)*k,
		Y:    from.Y + (to.Y-from.Y)*k,
		Z:    from.Z + (to.Z-from.Z)*k,
		W:    from.W + (to.W-from.W)*k,
	}
}
