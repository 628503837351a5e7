package download

// Package download implements the simulated download pipeline: a ticking
// progress simulator and a service that manages the task lifecycle,
// cancellation, progress propagation to UI, history persistence and the
// completion signal.
