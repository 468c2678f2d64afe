package platform

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Taskbar edge detection tolerance in pixels.
const edgeTolerance = 10

// SnapToCorner computes the docking position of a strip of the given size
// next to the taskbar's notification area. With no taskbar rect the strip
// docks to the bottom-right screen corner. A taskbar on the top, left, or
// right edge shifts the strip to hug that edge instead.
func SnapToCorner(screen Rect, stripW, stripH, margin int, taskbar *Rect) (x, y int) {
	if taskbar == nil {
		return screen.Right() - stripW - margin, screen.Bottom() - stripH - margin
	}

	x = taskbar.Right() - stripW - margin
	y = taskbar.Y - stripH - margin

	if abs(taskbar.Y-screen.Y) < edgeTolerance {
		// Taskbar along the top edge: sit just below it
		y = taskbar.Bottom() + margin
	}
	if abs(taskbar.X-screen.X) < edgeTolerance {
		// Vertical taskbar on the left: sit to its right, bottom-aligned
		x = taskbar.Right() + margin
		y = taskbar.Bottom() - stripH - margin
	}
	if abs(taskbar.Right()-screen.Right()) < edgeTolerance {
		// Vertical taskbar on the right: sit to its left, bottom-aligned
		x = taskbar.X - stripW - margin
		y = taskbar.Bottom() - stripH - margin
	}

	return x, y
}

// ClampToScreen keeps a strip position fully inside the screen bounds.
func ClampToScreen(screen Rect, stripW, stripH, x, y int) (int, int) {
	if x < screen.X {
		x = screen.X
	}
	if y < screen.Y {
		y = screen.Y
	}
	if x > screen.Right()-stripW {
		x = screen.Right() - stripW
	}
	if y > screen.Bottom()-stripH {
		y = screen.Bottom() - stripH
	}
	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
