package domain

import (
	"errors"
	"strings"
)

// Category identifies one of the three service lines sold by the marketplace.
// Each line is persisted upstream as a differently-shaped resource; the
// categoryRules table below is the single place that records how they differ,
// so adding a service line means adding one row rather than editing every
// operation.
type Category string

const (
	CategoryAstrology Category = "ASTROLOGY"
	CategoryPuja      Category = "PUJA"
	CategoryRegular   Category = "REGULAR"
)

var ErrUnknownCategory = errors.New("unknown booking category")

type categoryRule struct {
	idPrefix string
	// legalTargets is the set of statuses the admin may select for this
	// category. It intentionally differs per line: astrology has the
	// narrowest lifecycle, regular the widest.
	legalTargets map[Status]struct{}
	// supportsAssignment is false where the upstream API exposes no
	// assignment endpoint for the category.
	supportsAssignment bool
}

var categoryRules = map[Category]categoryRule{
	CategoryAstrology: {
		idPrefix: "AB",
		legalTargets: statusSet(
			StatusConfirmed, StatusCompleted, StatusCancelled,
		),
		supportsAssignment: false,
	},
	CategoryPuja: {
		idPrefix: "PB",
		legalTargets: statusSet(
			StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusFailed,
		),
		supportsAssignment: true,
	},
	CategoryRegular: {
		idPrefix: "RB",
		legalTargets: statusSet(
			StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected, StatusFailed,
		),
		supportsAssignment: true,
	},
}

func statusSet(statuses ...Status) map[Status]struct{} {
	set := make(map[Status]struct{}, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}

// Categories returns all service lines in a stable order.
func Categories() []Category {
	return []Category{CategoryAstrology, CategoryPuja, CategoryRegular}
}

// ParseCategory resolves user-supplied input into a Category.
func ParseCategory(raw string) (Category, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(CategoryAstrology), "ASTRO":
		return CategoryAstrology, nil
	case string(CategoryPuja):
		return CategoryPuja, nil
	case string(CategoryRegular), "BOOKING":
		return CategoryRegular, nil
	}
	return "", ErrUnknownCategory
}

// Valid reports whether c names a known service line.
func (c Category) Valid() bool {
	_, ok := categoryRules[c]
	return ok
}

// AllowsTarget reports whether targetStatus is selectable for this category.
func (c Category) AllowsTarget(target Status) bool {
	rule, ok := categoryRules[c]
	if !ok {
		return false
	}
	_, allowed := rule.legalTargets[target]
	return allowed
}

// LegalTargets returns the category's selectable statuses in lifecycle order.
func (c Category) LegalTargets() []Status {
	rule, ok := categoryRules[c]
	if !ok {
		return nil
	}
	ordered := []Status{
		StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusRejected, StatusFailed, StatusRefunded,
	}
	targets := make([]Status, 0, len(rule.legalTargets))
	for _, s := range ordered {
		if _, ok := rule.legalTargets[s]; ok {
			targets = append(targets, s)
		}
	}
	return targets
}

// SupportsAssignment reports whether staff assignment exists upstream for this
// category.
func (c Category) SupportsAssignment() bool {
	rule, ok := categoryRules[c]
	return ok && rule.supportsAssignment
}

// QualifyID turns a raw upstream identifier into the category-qualified
// canonical id (e.g. "7" in the puja collection becomes "PB-7"). Qualified
// ids are unique across categories and stable across re-normalization.
func (c Category) QualifyID(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	rule, ok := categoryRules[c]
	if !ok {
		return trimmed
	}
	prefix := rule.idPrefix + "-"
	if strings.HasPrefix(trimmed, prefix) {
		return trimmed
	}
	return prefix + trimmed
}

// RawID strips the category qualifier from a canonical id, yielding the
// identifier the upstream API expects in its paths.
func (c Category) RawID(qualified string) string {
	trimmed := strings.TrimSpace(qualified)
	rule, ok := categoryRules[c]
	if !ok {
		return trimmed
	}
	return strings.TrimPrefix(trimmed, rule.idPrefix+"-")
}
