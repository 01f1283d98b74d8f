// Package listing renders add-on listing cards: a heading fragment (icon,
// linked name, byline) and an info fragment (count line, contextual date
// line). Rendering is pure; the only side effect is the returned markup.
package listing

import "time"

// Type tags an add-on with its catalog category.
type Type string

// Add-on catalog categories.
const (
	TypeExtension    Type = "extension"
	TypeTheme        Type = "theme"
	TypeDictionary   Type = "dictionary"
	TypeSearchTool   Type = "search"
	TypeLanguagePack Type = "language"
)

// Addon is the catalog entry consumed by the card renderer.
type Addon struct {
	Name              string
	Type              Type
	IconURL           string
	URLPath           string
	Authors           []string
	WeeklyDownloads   int
	AverageDailyUsers int
	Created           time.Time
	Modified          time.Time
}

// Collection is the optional curating context for a card. Anything with an
// identifier can act as one.
type Collection interface {
	ID() string
}

// DateMode selects which date line the info fragment shows.
type DateMode string

// Date modes. Created, New, and Newest are equivalent aliases for the
// creation date; Updated selects the last-update date; any other value
// renders no date line.
const (
	DateCreated DateMode = "created"
	DateNew     DateMode = "new"
	DateNewest  DateMode = "newest"
	DateUpdated DateMode = "updated"
)

// showsCreated reports whether the mode is one of the "added" aliases.
func (m DateMode) showsCreated() bool {
	return m == DateCreated || m == DateNew || m == DateNewest
}
