package ui

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/sbilibin2017/linkvault/internal/models"
)

// previewLength is how much of a URL a link card shows.
const previewLength = 30

// GetDomain returns the host of rawURL, or "" when it has none.
func GetDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Preview shortens rawURL to the first 30 characters.
func Preview(rawURL string) string {
	r := []rune(rawURL)
	if len(r) <= previewLength {
		return rawURL
	}
	return string(r[:previewLength])
}

// Render writes the dashboard as plain text.
func Render(w io.Writer, d Dashboard) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if d.User.Username != "" {
		fmt.Fprintf(tw, "Hello, %s!\n\n", d.User.Username)
	}

	fmt.Fprintln(tw, "CATEGORIES")
	for _, item := range d.Sidebar {
		marker := " "
		if item.Active {
			marker = "*"
		}
		id := ""
		if cid, ok := item.Selection.CategoryID(); ok {
			id = cid.String()
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%d\t%s\n", marker, item.Label, item.Color, item.Count, id)
	}
	if len(d.Sidebar) == 1 {
		fmt.Fprintln(tw, "  No categories yet. Create one!")
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, strings.ToUpper(d.Title))
	switch {
	case d.Empty:
		fmt.Fprintln(tw, "  No links yet")
	case d.Groups != nil:
		for _, g := range d.Groups {
			fmt.Fprintf(tw, "== %s (%s) ==\n", g.Name, g.Color)
			for _, l := range g.Links {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", l.Title, GetDomain(l.URL), l.ID)
			}
		}
	case len(d.Links) == 0:
		fmt.Fprintln(tw, "  Nothing here")
	default:
		for _, l := range d.Links {
			renderCard(tw, l)
		}
	}

	return tw.Flush()
}

// RenderLink writes a single link card.
func RenderLink(w io.Writer, l models.LinkDB) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	renderCard(tw, l)
	return tw.Flush()
}

func renderCard(w io.Writer, l models.LinkDB) {
	fmt.Fprintf(w, "- %s\t%s\t%s\n", l.Title, GetDomain(l.URL), l.ID)
	if l.Description != nil && *l.Description != "" {
		fmt.Fprintf(w, "    %s\n", *l.Description)
	}
	fmt.Fprintf(w, "    %s\tAdded %s\n", Preview(l.URL), l.CreatedAt.Local().Format("2006-01-02"))
}
