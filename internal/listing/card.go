package listing

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	for _, m := range []struct {
		key, one, other string
	}{
		{"%d weekly downloads", "%d weekly download", "%d weekly downloads"},
		{"%d average daily users", "%d average daily user", "%d average daily users"},
	} {
		if err := message.Set(language.English, m.key,
			plural.Selectf(1, "%d",
				plural.One, m.one,
				plural.Other, m.other,
			)); err != nil {
			panic(fmt.Sprintf("listing: bad plural message %q: %v", m.key, err))
		}
	}
}

var headingTmpl = template.Must(template.New("heading").Parse(strings.TrimSpace(`
<div class="item addon">
<h3><a {{.HrefAttr}}><img class="icon" src="{{.IconURL}}" alt="">{{.Name}}</a></h3>
{{if .Byline}}<p class="byline">by {{.Byline}}</p>{{end}}
</div>
`)))

var infoTmpl = template.Must(template.New("info").Parse(strings.TrimSpace(`
<div class="vitals">
<span class="{{.CountClass}}">{{.CountLine}}</span>
{{if .DateLine}}<span class="{{.DateClass}}">{{.DateLine}}</span>{{end}}
</div>
`)))

// Renderer produces listing-card fragments with locale-aware counts.
type Renderer struct {
	printer *message.Printer
}

// NewRenderer creates a Renderer for the given locale.
func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{printer: message.NewPrinter(tag)}
}

// Heading renders the heading fragment. With a collection context the
// entry's link is annotated with the collection identifier as a query
// parameter; otherwise the link carries no query string.
func (r *Renderer) Heading(a *Addon, c Collection) (template.HTML, error) {
	href := a.URLPath
	if c != nil {
		href = fmt.Sprintf("%s?src=collection&collection_id=%s", a.URLPath, c.ID())
	}

	data := struct {
		// The href is assembled above from trusted path and identifier
		// values; attribute injection keeps the & separator literal.
		HrefAttr template.HTMLAttr
		IconURL  string
		Name     string
		Byline   string
	}{
		HrefAttr: template.HTMLAttr(fmt.Sprintf("href=%q", href)),
		IconURL:  a.IconURL,
		Name:     a.Name,
		Byline:   strings.Join(a.Authors, ", "),
	}

	var b strings.Builder
	if err := headingTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render heading: %w", err)
	}
	return template.HTML(b.String()), nil
}

// InfoOptions configures the info fragment.
type InfoOptions struct {
	// DateMode selects the date line; unrecognized modes render none.
	DateMode DateMode

	// ShowDownloads forces the weekly-download count even for entries
	// that would otherwise show average daily users.
	ShowDownloads bool
}

// Info renders the info fragment: one count line (weekly downloads for
// search tools or when explicitly requested, average daily users
// otherwise) and an optional date line below it.
func (r *Renderer) Info(a *Addon, opts InfoOptions) (template.HTML, error) {
	var countClass, countLine string
	if opts.ShowDownloads || a.Type == TypeSearchTool {
		countClass = "downloads"
		countLine = r.printer.Sprintf("%d weekly downloads", a.WeeklyDownloads)
	} else {
		countClass = "adu"
		countLine = r.printer.Sprintf("%d average daily users", a.AverageDailyUsers)
	}

	var dateClass, dateLine string
	switch {
	case opts.DateMode.showsCreated():
		dateClass = "updated"
		dateLine = "Added " + formatDate(a.Created)
	case opts.DateMode == DateUpdated:
		dateClass = "updated"
		dateLine = "Updated " + formatDate(a.Modified)
	}

	data := struct {
		CountClass string
		CountLine  string
		DateClass  string
		DateLine   string
	}{countClass, countLine, dateClass, dateLine}

	var b strings.Builder
	if err := infoTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render info: %w", err)
	}
	return template.HTML(b.String()), nil
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
