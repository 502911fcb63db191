package cube

//go:generate go tool stringer -type Face -trimprefix Face

// Face identifies one of the six sides of the cube. The order
// matches the order of the vertices in Positions.
type Face uint8

const (
	FaceLeft Face = iota
	FaceRight
	FaceTop
	FaceBottom
	FaceFront
	FaceBack
)

const FaceCount = 6

// Faces lists all faces in vertex order.
var Faces = [FaceCount]Face{FaceLeft, FaceRight, FaceTop, FaceBottom, FaceFront, FaceBack}
