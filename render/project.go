package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/vista/parameter"
	"github.com/lixenwraith/vista/scene"
	"github.com/lixenwraith/vista/vmath"
)

// Viewport is the host drawing surface in pixels (or terminal cells)
type Viewport struct {
	Width  int
	Height int
}

// Project transforms a world point through the camera into viewport
// coordinates. Returns screen x/y, view-space depth, and whether the point is
// in front of the near plane
func Project(cam *scene.Camera, p vmath.Vec3, vp Viewport) (sx, sy, depth float64, ok bool) {
	rel := vmath.V3Sub(p, cam.Position)
	view := vmath.QRotate(vmath.QConjugate(cam.Rotation), rel)

	depth = -view.Z
	if depth <= parameter.RenderNearPlane {
		return 0, 0, depth, false
	}

	// Vertical fov sets the focal length; horizontal follows the aspect
	focal := float64(vp.Height) / 2 / math.Tan(cam.Fov*math.Pi/180/2)
	sx = float64(vp.Width)/2 + view.X*focal/depth
	sy = float64(vp.Height)/2 - view.Y*focal/depth
	return sx, sy, depth, true
}

// DepthOrder returns particle indices sorted back-to-front for painter-order
// drawing. positions is the xyz-interleaved snapshot of the particle field
func DepthOrder(cam *scene.Camera, positions []float64) []int {
	n := len(positions) / 3
	depths := make([]float64, n)
	order := make([]int, n)

	inv := vmath.QConjugate(cam.Rotation)
	for i := 0; i < n; i++ {
		base := i * 3
		rel := vmath.V3Sub(vmath.Vec3{
			X: positions[base],
			Y: positions[base+1],
			Z: positions[base+2],
		}, cam.Position)
		depths[i] = -vmath.QRotate(inv, rel).Z
		order[i] = i
	}

	sort.Slice(order, func(a, b int) bool {
		return depths[order[a]] > depths[order[b]]
	})
	return order
}
