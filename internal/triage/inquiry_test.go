package triage_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/kaymen99/publishing-gmail-automation/internal/triage"
)

func TestParseInquiry(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    triage.Inquiry
		wantErr bool
	}{
		{"submission process", "Submission Process and Procedure", triage.InquirySubmissionProcess, false},
		{"fees", "Fees or Charges", triage.InquiryFeesOrCharges, false},
		{"deadlines", "Submission Deadlines", triage.InquirySubmissionDeadlines, false},
		{"indexing", "Journal Indexing", triage.InquiryJournalIndexing, false},
		{"guidelines", "Submission Guidelines (formatting, word count, or page count)", triage.InquirySubmissionGuidelines, false},
		{"unknown", "Refund Policy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := triage.ParseInquiry(tt.value)
			if tt.wantErr {
				if !errors.Is(err, triage.ErrInvalidInquiry) {
					t.Fatalf("ParseInquiry(%q) error = %v, want ErrInvalidInquiry", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInquiry(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ParseInquiry(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestAdjustInquiries(t *testing.T) {
	tests := []struct {
		name     string
		category triage.Category
		tags     []triage.Inquiry
		contains []triage.Inquiry
		excludes []triage.Inquiry
	}{
		{
			"want to publish adds submission process",
			triage.CategoryWantToPublish,
			[]triage.Inquiry{triage.InquiryFeesOrCharges},
			[]triage.Inquiry{triage.InquiryFeesOrCharges, triage.InquirySubmissionProcess},
			nil,
		},
		{
			"want to publish does not duplicate submission process",
			triage.CategoryWantToPublish,
			[]triage.Inquiry{triage.InquirySubmissionProcess},
			[]triage.Inquiry{triage.InquirySubmissionProcess},
			nil,
		},
		{
			"share another paper adds share draft and removes submission process",
			triage.CategoryShareAnotherPaper,
			[]triage.Inquiry{triage.InquirySubmissionProcess, triage.InquirySubmissionDeadlines},
			[]triage.Inquiry{triage.InquiryWantsToShareDraft, triage.InquirySubmissionDeadlines},
			[]triage.Inquiry{triage.InquirySubmissionProcess},
		},
		{
			"share another paper with empty tags",
			triage.CategoryShareAnotherPaper,
			nil,
			[]triage.Inquiry{triage.InquiryWantsToShareDraft},
			[]triage.Inquiry{triage.InquirySubmissionProcess},
		},
		{
			"direct categories untouched",
			triage.CategoryNotInterested,
			[]triage.Inquiry{triage.InquiryFeesOrCharges},
			[]triage.Inquiry{triage.InquiryFeesOrCharges},
			[]triage.Inquiry{triage.InquirySubmissionProcess, triage.InquiryWantsToShareDraft},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := triage.AdjustInquiries(tt.category, slices.Clone(tt.tags))
			for _, want := range tt.contains {
				if !slices.Contains(got, want) {
					t.Errorf("AdjustInquiries() = %v, missing %q", got, want)
				}
			}
			for _, not := range tt.excludes {
				if slices.Contains(got, not) {
					t.Errorf("AdjustInquiries() = %v, must not contain %q", got, not)
				}
			}
		})
	}

	t.Run("want to publish adds at most once", func(t *testing.T) {
		got := triage.AdjustInquiries(triage.CategoryWantToPublish, []triage.Inquiry{triage.InquirySubmissionProcess})
		count := 0
		for _, tag := range got {
			if tag == triage.InquirySubmissionProcess {
				count++
			}
		}
		if count != 1 {
			t.Errorf("submission process count = %d, want 1", count)
		}
	})
}
