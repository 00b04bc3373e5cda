package triage

import "slices"

// Inquiry is a specific sub-topic detected within an email that needs
// knowledge-base-grounded coverage in the reply.
type Inquiry string

// Inquiry tags. WantsToShareDraft is synthetic: it is never returned by
// the extraction collaborator, only injected by AdjustInquiries.
const (
	InquirySubmissionProcess    Inquiry = "Submission Process and Procedure"
	InquiryJournalOrPaper       Inquiry = "Journal Suggestions or Paper Proposal"
	InquiryFeesOrCharges        Inquiry = "Fees or Charges"
	InquirySubmissionDeadlines  Inquiry = "Submission Deadlines"
	InquiryJournalIndexing      Inquiry = "Journal Indexing"
	InquirySubmissionGuidelines Inquiry = "Submission Guidelines (formatting, word count, or page count)"
	InquiryWantsToShareDraft    Inquiry = "Want to share a draft"
)

var inquiries = []Inquiry{
	InquirySubmissionProcess,
	InquiryJournalOrPaper,
	InquiryFeesOrCharges,
	InquirySubmissionDeadlines,
	InquiryJournalIndexing,
	InquirySubmissionGuidelines,
	InquiryWantsToShareDraft,
}

// ParseInquiry validates an extraction collaborator response value.
// Returns ErrInvalidInquiry if the value is not recognized.
func ParseInquiry(s string) (Inquiry, error) {
	v := Inquiry(s)
	if !slices.Contains(inquiries, v) {
		return "", ErrInvalidInquiry
	}
	return v, nil
}

// AdjustInquiries applies the deterministic post-extraction rules for
// the augmented route. WantToPublish always carries SubmissionProcess;
// ShareAnotherPaper always carries WantsToShareDraft and never
// SubmissionProcess. The branches are mutually exclusive since the
// category is single-valued.
func AdjustInquiries(category Category, tags []Inquiry) []Inquiry {
	switch category {
	case CategoryWantToPublish:
		if !slices.Contains(tags, InquirySubmissionProcess) {
			tags = append(tags, InquirySubmissionProcess)
		}
	case CategoryShareAnotherPaper:
		if !slices.Contains(tags, InquiryWantsToShareDraft) {
			tags = append(tags, InquiryWantsToShareDraft)
		}
		tags = slices.DeleteFunc(tags, func(t Inquiry) bool {
			return t == InquirySubmissionProcess
		})
	}
	return tags
}
