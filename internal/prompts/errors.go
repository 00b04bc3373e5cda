package prompts

import "errors"

// ErrInvalidStage is returned when a stage value is not recognized.
var ErrInvalidStage = errors.New("invalid inference stage")
