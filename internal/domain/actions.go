package domain

// Attachment is the final step of start and resume: hand the terminal over to
// the session host. The lifecycle only describes it; the CLI performs it, and
// nothing runs afterwards.
type Attachment struct {
	// Create allows the session host to create the session when missing.
	// Resume only reattaches.
	Create  bool
	Session string
}
