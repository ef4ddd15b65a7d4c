package layout

// CalculateModalWidth computes responsive modal width based on percentage of terminal width.
// Uses widthPercent of terminal width, clamped between MinWidth and MaxWidth,
// and never wider than the terminal minus a small margin.
func CalculateModalWidth(terminalWidth, widthPercent int, cfg ModalConfig) int {
	width := terminalWidth * widthPercent / 100

	// Apply min/max constraints
	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}

	// Don't exceed terminal width
	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	if width < 1 {
		return 1
	}

	return width
}

// ModalBounds returns the top-left corner of a box of the given size centered
// in an area. Used to decide whether a mouse click landed inside the modal.
func ModalBounds(areaWidth, areaHeight, boxWidth, boxHeight int) (x, y int) {
	x = (areaWidth - boxWidth) / 2
	y = (areaHeight - boxHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// Contains reports whether point (px, py) lies in the box at (x, y) sized w by h.
func Contains(x, y, w, h, px, py int) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
