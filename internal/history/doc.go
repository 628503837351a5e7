package history

// Package history keeps the list of completed downloads: newest first,
// capped, stored as one JSON value under a single key of a key-value backend.
