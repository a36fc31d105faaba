package model

// Package model defines the domain data structures shared across the app:
// fetched records and the grouping key they carry. Records are decoded once
// from the endpoint payload and treated as immutable afterwards.
