// Package ui holds the terminal front end's state and rendering. It reads
// and writes server state only through the client data layer.
package ui

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/models"
)

// Modal is the form currently open. The concrete types below are the only
// implementations.
type Modal interface {
	isModal()
}

// Closed means no form is open.
type Closed struct{}

// CreatingLink is the new-link form.
type CreatingLink struct{}

// EditingLink is the edit form of one link.
type EditingLink struct {
	ID uuid.UUID
}

// CreatingCategory is the new-category form.
type CreatingCategory struct{}

// EditingCategory is the edit form of one category.
type EditingCategory struct {
	ID uuid.UUID
}

func (Closed) isModal()           {}
func (CreatingLink) isModal()     {}
func (EditingLink) isModal()      {}
func (CreatingCategory) isModal() {}
func (EditingCategory) isModal()  {}

type selectionKind int

const (
	selectAll selectionKind = iota
	selectCategory
	selectUncategorized
)

// Selection is what the main panel shows: every link, one category, or the
// links without a category. The zero value selects everything.
type Selection struct {
	kind       selectionKind
	categoryID uuid.UUID
}

// SelectAll selects every link.
func SelectAll() Selection {
	return Selection{kind: selectAll}
}

// SelectCategory selects the links of one category.
func SelectCategory(id uuid.UUID) Selection {
	return Selection{kind: selectCategory, categoryID: id}
}

// SelectUncategorized selects the links without a category.
func SelectUncategorized() Selection {
	return Selection{kind: selectUncategorized}
}

// IsAll reports whether nothing narrows the view.
func (s Selection) IsAll() bool {
	return s.kind == selectAll
}

// IsUncategorized reports whether the uncategorized bucket is selected.
func (s Selection) IsUncategorized() bool {
	return s.kind == selectUncategorized
}

// CategoryID returns the selected category, if any.
func (s Selection) CategoryID() (uuid.UUID, bool) {
	return s.categoryID, s.kind == selectCategory
}

// Matches reports whether link belongs in the selection.
func (s Selection) Matches(link models.LinkDB) bool {
	switch s.kind {
	case selectCategory:
		return link.CategoryID.Valid && link.CategoryID.UUID == s.categoryID
	case selectUncategorized:
		return link.Uncategorized()
	default:
		return true
	}
}

// ParseSelection resolves a command-line value: empty or "all", "uncategorized",
// a category id, or a category name (case-insensitive).
func ParseSelection(value string, categories []models.CategoryDB) (Selection, error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "", "all":
		return SelectAll(), nil
	case "uncategorized":
		return SelectUncategorized(), nil
	}

	if id, err := uuid.Parse(value); err == nil {
		for _, c := range categories {
			if c.ID == id {
				return SelectCategory(id), nil
			}
		}
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, value) {
			return SelectCategory(c.ID), nil
		}
	}
	return Selection{}, fmt.Errorf("unknown category %q", value)
}
