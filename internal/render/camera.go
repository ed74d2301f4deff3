package render

// Camera maps grid tiles to terminal cells. Each tile is two columns wide
// so the top-down view keeps roughly square tiles. Grid z runs down the
// screen.
type Camera struct {
	OffsetX    int
	OffsetZ    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on tile (cx, cz).
func NewCamera(cx, cz, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cz)
	return c
}

// Center repositions the camera so that tile (cx, cz) is in the middle.
func (c *Camera) Center(cx, cz int) {
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetZ = cz - c.ViewHeight/2
}

// TileToScreen converts tile (x, z) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) TileToScreen(x, z int) (sx, sy int, visible bool) {
	sx = (x - c.OffsetX) * 2
	sy = z - c.OffsetZ
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToTile converts screen (sx, sy) to a tile index.
func (c *Camera) ScreenToTile(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, sy + c.OffsetZ
}
