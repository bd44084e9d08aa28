package ui

import (
	"github.com/google/uuid"
	"github.com/sbilibin2017/linkvault/internal/models"
)

const (
	allLinksLabel      = "All Links"
	uncategorizedLabel = "Uncategorized"
	uncategorizedColor = "#ccc"
)

// SidebarItem is one selectable row of the sidebar.
type SidebarItem struct {
	Label     string
	Color     string
	Count     int
	Selection Selection
	Active    bool
}

// Group is a block of links sharing a category in the grouped view.
type Group struct {
	Name  string
	Color string
	Links []models.LinkDB
}

// Dashboard is everything the screen shows. Groups is set when nothing is
// selected, Links otherwise.
type Dashboard struct {
	User    models.PublicUser
	Title   string
	Sidebar []SidebarItem
	Groups  []Group
	Links   []models.LinkDB
	Empty   bool
}

// BuildDashboard derives the view from the full category and link lists.
// A selected category that no longer exists falls back to everything.
func BuildDashboard(user models.PublicUser, categories []models.CategoryDB, links []models.LinkDB, sel Selection) Dashboard {
	byID := make(map[uuid.UUID]models.CategoryDB, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	title := allLinksLabel
	if sel.IsUncategorized() {
		title = uncategorizedLabel
	} else if id, ok := sel.CategoryID(); ok {
		if c, found := byID[id]; found {
			title = c.Name
		} else {
			sel = SelectAll()
		}
	}

	d := Dashboard{
		User:    user,
		Title:   title,
		Sidebar: sidebar(categories, links, sel),
		Empty:   len(links) == 0,
	}

	if sel.IsAll() {
		d.Groups = group(byID, links)
		return d
	}

	d.Links = []models.LinkDB{}
	for _, l := range links {
		if sel.Matches(l) {
			d.Links = append(d.Links, l)
		}
	}
	return d
}

func sidebar(categories []models.CategoryDB, links []models.LinkDB, sel Selection) []SidebarItem {
	counts := map[uuid.UUID]int{}
	uncategorized := 0
	for _, l := range links {
		if l.Uncategorized() {
			uncategorized++
			continue
		}
		counts[l.CategoryID.UUID]++
	}

	selected, _ := sel.CategoryID()
	items := []SidebarItem{{
		Label:     allLinksLabel,
		Count:     len(links),
		Selection: SelectAll(),
		Active:    sel.IsAll(),
	}}
	for _, c := range categories {
		items = append(items, SidebarItem{
			Label:     c.Name,
			Color:     c.Color,
			Count:     counts[c.ID],
			Selection: SelectCategory(c.ID),
			Active:    !sel.IsAll() && !sel.IsUncategorized() && selected == c.ID,
		})
	}
	if uncategorized > 0 {
		items = append(items, SidebarItem{
			Label:     uncategorizedLabel,
			Color:     uncategorizedColor,
			Count:     uncategorized,
			Selection: SelectUncategorized(),
			Active:    sel.IsUncategorized(),
		})
	}
	return items
}

// group keeps groups in order of first appearance in links, which arrive
// newest first. Links pointing at an unknown category go to Uncategorized.
func group(byID map[uuid.UUID]models.CategoryDB, links []models.LinkDB) []Group {
	var groups []Group
	index := map[uuid.UUID]int{}

	for _, l := range links {
		key := uuid.Nil
		name, color := uncategorizedLabel, uncategorizedColor
		if c, ok := byID[l.CategoryID.UUID]; ok && l.CategoryID.Valid {
			key, name, color = c.ID, c.Name, c.Color
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Name: name, Color: color})
		}
		groups[i].Links = append(groups[i].Links, l)
	}
	return groups
}
