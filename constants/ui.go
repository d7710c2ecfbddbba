package constants

import "time"

// Grid Layout Constants
const (
	// DefaultColumns is the number of swatches per grid row
	DefaultColumns = 10

	// DefaultCellWidth is the swatch width in terminal columns
	DefaultCellWidth = 8

	// DefaultCellHeight is the swatch height in terminal rows
	DefaultCellHeight = 1

	// GridMarginX is the gap between the left screen edge and the grid
	GridMarginX = 1

	// GridMarginY is the gap between the top screen edge and the grid
	GridMarginY = 1

	// StatusBarHeight is reserved at the bottom of the screen
	StatusBarHeight = 1
)

// Tooltip and Popup Constants
const (
	// TooltipOffsetX is the horizontal distance between the hovered cell and its tooltip
	TooltipOffsetX = 2

	// TooltipPadding is the blank space inside the tooltip on each side
	TooltipPadding = 1

	// DetailPaddingX is the horizontal padding inside the detail popup
	DetailPaddingX = 2

	// DetailSwatchRows is the height of the colour bar at the top of the detail popup
	DetailSwatchRows = 2

	// DetailLabelGap separates the label column from the text column
	DetailLabelGap = 2
)

// UI Timing Constants
const (
	// StatusMessageTimeout is how long a status message stays before the default text returns
	StatusMessageTimeout = 3 * time.Second

	// TickInterval drives status expiry checks in the event loop
	TickInterval = 250 * time.Millisecond

	// EventQueueSize buffers screen events between the poller and the loop
	EventQueueSize = 64
)

// Cursor Marker
const (
	// CursorRune marks the selected swatch
	CursorRune = '◆'

	// MarkerLumaThreshold picks a dark marker on swatches whose YIQ luma is above it
	MarkerLumaThreshold = 0.5
)
