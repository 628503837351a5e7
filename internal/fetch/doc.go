package fetch

// Package fetch looks up video metadata for a pasted link. The shipped
// implementation is a simulator that waits out a fixed latency and returns a
// synthetic descriptor; a networked Fetcher plugs in behind the same interface.
