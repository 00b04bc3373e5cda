// Package triage defines the domain model for inbound email triage:
// the Email record, the closed Category and Inquiry enumerations, the
// route mapping, and the canned reply templates.
package triage

// Email is one inbound message as returned by the mailbox provider.
// Quoted history has already been stripped from Body.
type Email struct {
	ID          string `json:"id"`
	ThreadID    string `json:"thread_id"`
	Sender      string `json:"sender"`
	SenderEmail string `json:"sender_email"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
}

// Loaded reports whether the record carries provider identifiers.
func (e Email) Loaded() bool {
	return e.ID != "" && e.ThreadID != ""
}
