package ui

// Package ui contains the Fyne-based user interface for the application. It
// renders the grouped record list, wires header taps and the expand/collapse
// buttons to the state store, and hosts settings and localization.
