package knowledge

import (
	"regexp"
	"strings"
)

// Exemplars are stored as transcript pairs. ExtractResponse isolates
// the reply portion: everything after "Response:" up to "Reply:" when
// present, otherwise to the end. A leading salutation word followed by
// a comma is dropped so fragments compose cleanly.
var salutationRegex = regexp.MustCompile(`^\w+,\s*`)

func ExtractResponse(fragment string) string {
	after := fragment
	if _, rest, ok := strings.Cut(fragment, "Response:"); ok {
		after = rest
	}

	if before, _, ok := strings.Cut(after, "Reply:"); ok {
		after = before
	}

	after = strings.TrimSpace(after)
	return strings.TrimSpace(salutationRegex.ReplaceAllString(after, ""))
}
