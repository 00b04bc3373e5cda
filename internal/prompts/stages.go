// Package prompts holds the fixed prompt content for every inference
// stage: tunable instructions, immutable response-format specs, and
// prompt composition from payload sections.
package prompts

import "slices"

// Stage identifies an inference stage of the automation workflow.
type Stage string

// Valid inference stages.
const (
	StageSummarize  Stage = "summarize"
	StageIntent     Stage = "intent"
	StageInquiries  Stage = "inquiries"
	StageSynthesize Stage = "synthesize"
	StageTemplated  Stage = "templated"
	StageGrounded   Stage = "grounded"
	StageUpdate     Stage = "update"
	StageReview     Stage = "review"
	StageRewrite    Stage = "rewrite"
)

var stages = []Stage{
	StageSummarize,
	StageIntent,
	StageInquiries,
	StageSynthesize,
	StageTemplated,
	StageGrounded,
	StageUpdate,
	StageReview,
	StageRewrite,
}

// Stages returns the list of valid inference stages.
func Stages() []Stage {
	return stages
}

// ParseStage validates a string as a known inference stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
