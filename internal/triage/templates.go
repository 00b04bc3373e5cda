package triage

var replyTemplates = map[Category]string{
	CategoryPaperAlreadyPublished: `Thank you for clarifying this with us. We apologize for the confusion but we are looking for papers that have not been published yet. In the future, should you have another manuscript that you would like to submit, feel free to let us know.

Regards,
Elena`,
	CategoryAfterSubmission: `Thank you for your submission. I will have this sent to the reviewers. My assistant should be in touch with you for additional details and updates with regards to your manuscript review information.

You should receive a submission receipt within 3 days, otherwise, inform me so we can follow up the request. After receiving a submission receipt, kindly wait for feedback within 20-25 days or until the review process is completed.

Regards,
Elena`,
	CategoryNotInterested: `Thank you for letting me know. Have a nice day!

Regards,
Elena`,
}

// ReplyTemplate returns the canned reply for a direct-route category.
// Only the three direct categories have templates; any other category
// is a routing defect surfaced as ErrNoTemplate.
func ReplyTemplate(category Category) (string, error) {
	t, ok := replyTemplates[category]
	if !ok {
		return "", ErrNoTemplate
	}
	return t, nil
}
