package triage

import "slices"

// Category is the classified intent of an inbound email. The set is
// closed over the router: any other value from the classification
// collaborator is a contract violation, never a default branch.
type Category string

// Intent categories. The string values are the wire values the
// classifier returns and the template map is keyed by.
const (
	CategoryPaperAlreadyPublished Category = "Paper Already Published"
	CategoryAfterSubmission       Category = "After submission"
	CategoryNotInterested         Category = "Not Interested"
	CategoryWantToPublish         Category = "Want to Publish"
	CategoryShareAnotherPaper     Category = "Share Another Paper"
	CategoryUnrelated             Category = "Unrelated"
)

var categories = []Category{
	CategoryPaperAlreadyPublished,
	CategoryAfterSubmission,
	CategoryNotInterested,
	CategoryWantToPublish,
	CategoryShareAnotherPaper,
	CategoryUnrelated,
}

// Categories returns the closed set of intent categories.
func Categories() []Category {
	return categories
}

// ParseCategory validates a classifier response value.
// Returns ErrInvalidCategory if the value is not recognized.
func ParseCategory(s string) (Category, error) {
	v := Category(s)
	if !slices.Contains(categories, v) {
		return "", ErrInvalidCategory
	}
	return v, nil
}

// Route is the reply-generation strategy chosen for an email.
type Route int

// Reply routes.
const (
	RouteDirect Route = iota
	RouteAugmented
	RouteSkip
)

// Route maps a category to its reply strategy. Pure function of the
// category; exhaustive over the closed set.
func (c Category) Route() (Route, error) {
	switch c {
	case CategoryPaperAlreadyPublished, CategoryAfterSubmission, CategoryNotInterested:
		return RouteDirect, nil
	case CategoryWantToPublish, CategoryShareAnotherPaper:
		return RouteAugmented, nil
	case CategoryUnrelated:
		return RouteSkip, nil
	default:
		return 0, ErrInvalidCategory
	}
}
