package state

// Package state owns the app state: the fetched records, their grouped
// projection and the expansion set. All reads and Dispatch calls happen on the
// UI goroutine; background fetch results are handed back through the post
// function given to NewStore.
