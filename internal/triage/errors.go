package triage

import "errors"

// Contract violations by classification collaborators.
var (
	ErrInvalidCategory = errors.New("unrecognized email category")
	ErrInvalidInquiry  = errors.New("unrecognized inquiry tag")
	ErrNoTemplate      = errors.New("no reply template for category")
)
