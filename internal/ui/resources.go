package ui

import (
	"fyne.io/fyne/v2"
)

const (
	LogoFile = "item-list.png"
)

// LoadLogoResource loads the header logo from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(LogoFile)
}
