// Package news defines the item model shared by every pipeline stage.
package news

import (
	"strings"
	"time"

	"github.com/prismanews/prisma/internal/textnorm"
)

// Item is a single collected headline. Link is the identity key: two items
// with the same link are the same item. Items live for one batch run only.
type Item struct {
	Source    string
	Title     string
	Link      string
	Published time.Time
}

// Sanitize cleans titles and drops items that are missing a title or link.
// Order is preserved.
func Sanitize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		it.Title = textnorm.CleanHTML(it.Title)
		it.Link = strings.TrimSpace(it.Link)
		if it.Title == "" || it.Link == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Titles returns the titles of the items in input order.
func Titles(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}
