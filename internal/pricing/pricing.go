// Package pricing provides the journal price lookup backed by a
// Google Sheets price list fetched once per run.
package pricing

import (
	"fmt"
	"strings"
)

// System is the pricing contract the workflow consumes.
type System interface {
	// Price returns the annual cost for a journal. An unrecognized
	// journal name is an error, never a guess.
	Price(journal string) (int, error)
}

type priceMap map[string]int

func (p priceMap) Price(journal string) (int, error) {
	price, ok := p[journal]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownJournal, journal)
	}
	return price, nil
}

// FromRows builds a System from sheet rows of [journal, price] pairs.
// Rows with fewer than two cells or a non-numeric price are skipped.
func FromRows(rows [][]any) System {
	prices := make(priceMap, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name, ok := row[0].(string)
		if !ok {
			continue
		}
		price, err := parsePrice(row[1])
		if err != nil {
			continue
		}
		prices[strings.TrimSpace(name)] = price
	}
	return prices
}

// JournalFromSubject extracts the journal name from an outreach
// subject line. The contract is the substring after the last "- ".
func JournalFromSubject(subject string) (string, error) {
	idx := strings.LastIndex(subject, "- ")
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrNoJournal, subject)
	}
	name := strings.TrimSpace(subject[idx+2:])
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrNoJournal, subject)
	}
	return name, nil
}
