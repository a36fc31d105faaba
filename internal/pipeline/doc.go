package pipeline

// Package pipeline turns a fetched record set into the grouped, ordered view
// the UI renders. Projection is a pure function of its input.
