package prompts

const summarizeSpec = `Respond with only the final email message, without any additional text or preamble. The main message is always at the beginning of the email; anything after the regards or signature must be discarded.`

const intentSpec = `Respond with a JSON object matching this exact structure:

{
  "intent": "<intent>"
}

Field constraints:
- intent: Exactly one of "Paper Already Published", "After submission",
  "Want to Publish", "Share Another Paper", "Not Interested",
  "Unrelated", spelled exactly as listed.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Never invent a value outside the listed set`

const inquiriesSpec = `Respond with a JSON object matching this exact structure:

{
  "inquiries": ["<inquiry1>", "<inquiry2>"]
}

Field constraints:
- inquiries: Array of every identified inquiry, using the inquiry type
  names exactly as listed in the instructions.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Include both explicit and implicit inquiries
- Use only the listed inquiry type names`

const synthesizeSpec = `Respond with only the relevant past reply material, maintaining the original tone and structure of the provided replies. Do not add commentary or preamble.`

const templatedSpec = `Respond with only the personalized email text.

Behavioral constraints:
- Start the email with "Dear <first name>" when the recipient's first
  name can be clearly determined
- Start with "Hello" when the name cannot be determined or is not given
- Never alter the template content beyond the salutation`

const groundedSpec = `Respond with only the drafted email text.

Behavioral constraints:
- Never reference the past replies explicitly; follow their tone and
  structure exactly
- Never add information beyond what the past replies provide
- Start with the recipient's name, or "Hello" when the name is unknown,
  and close with regards`

const updateSpec = `Respond with only the revised email text, with no additional comments or introduction.

Behavioral constraints:
- Start with "Hello" when the recipient's name is not given or unclear
- Never introduce cost or deadline mentions into an email that does not
  already discuss them`

const reviewSpec = `Respond with a JSON object matching this exact structure:

{
  "feedback": "<feedback>"
}

Field constraints:
- feedback: Brief feedback on what crucial sender inquiry was
  overlooked, or exactly "ready" when the email is good.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing`

const rewriteSpec = `Respond with only the final email, without any other text or preamble.`

var specs = map[Stage]string{
	StageSummarize:  summarizeSpec,
	StageIntent:     intentSpec,
	StageInquiries:  inquiriesSpec,
	StageSynthesize: synthesizeSpec,
	StageTemplated:  templatedSpec,
	StageGrounded:   groundedSpec,
	StageUpdate:     updateSpec,
	StageReview:     reviewSpec,
	StageRewrite:    rewriteSpec,
}

// Spec returns the response-format specification for an inference stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Spec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
