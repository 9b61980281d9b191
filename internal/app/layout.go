package app

// Loading dialog size as percentages of the terminal.
const (
	loadingWidthPct  = 60
	loadingHeightPct = 25
)

// layoutDims carries the computed sizes of the main view sections.
type layoutDims struct {
	width        int
	height       int
	headerHeight int
	footerHeight int
	statusHeight int
	bodyHeight   int
	menuWidth    int
	statusWidth  int
}

// computeLayout splits the terminal into header, body panes, the
// transient status line and the footer.
func (m *Model) computeLayout() layoutDims {
	dims := layoutDims{
		width:        m.ui.windowWidth,
		height:       m.ui.windowHeight,
		headerHeight: 3,
		footerHeight: 3,
		statusHeight: 1,
	}
	dims.bodyHeight = maxInt(3, dims.height-dims.headerHeight-dims.footerHeight-dims.statusHeight)

	// Menu and status panes split the body evenly; the menu keeps the
	// extra column on odd widths.
	dims.statusWidth = maxInt(20, dims.width/2)
	dims.menuWidth = maxInt(20, dims.width-dims.statusWidth)
	return dims
}

// centeredRect computes the centered overlay rectangle by two nested
// percentage splits, vertical then horizontal, each cutting
// ((100-p)/2, p, (100-p)/2) and keeping the middle segment.
func centeredRect(percentX, percentY, width, height int) (x, y, w, h int) {
	topPct := (100 - percentY) / 2
	y = height * topPct / 100
	h = height * percentY / 100

	leftPct := (100 - percentX) / 2
	x = width * leftPct / 100
	w = width * percentX / 100
	return x, y, w, h
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
