package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// isMobileDevice checks if the app is running on a mobile device
func isMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// newAdaptiveButtonBar places the buttons side by side, stacking them in
// portrait orientation on mobile
func newAdaptiveButtonBar(buttons ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(len(buttons), buttons...)
}
