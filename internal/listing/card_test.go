package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type fakeCollection struct{ id string }

func (c fakeCollection) ID() string { return c.id }

func testAddon() *Addon {
	return &Addon{
		Name:              "Tab Sweeper",
		Type:              TypeExtension,
		IconURL:           "/media/icons/42.png",
		URLPath:           "/addon/tab-sweeper",
		Authors:           []string{"mara", "jo"},
		WeeklyDownloads:   2345,
		AverageDailyUsers: 678,
		Created:           time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Modified:          time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestHeading(t *testing.T) {
	r := NewRenderer(language.English)

	t.Run("collection context annotates the link", func(t *testing.T) {
		out, err := r.Heading(testAddon(), fakeCollection{id: "abc123"})
		require.NoError(t, err)
		assert.Contains(t, string(out), `href="/addon/tab-sweeper?src=collection&collection_id=abc123"`)
	})

	t.Run("no collection means no query string", func(t *testing.T) {
		out, err := r.Heading(testAddon(), nil)
		require.NoError(t, err)
		assert.Contains(t, string(out), `href="/addon/tab-sweeper"`)
		assert.NotContains(t, string(out), "?")
	})

	t.Run("icon, name, and byline are present", func(t *testing.T) {
		out, err := r.Heading(testAddon(), nil)
		require.NoError(t, err)
		s := string(out)
		assert.Contains(t, s, `src="/media/icons/42.png"`)
		assert.Contains(t, s, "Tab Sweeper")
		assert.Contains(t, s, "by mara, jo")
	})

	t.Run("name is escaped", func(t *testing.T) {
		a := testAddon()
		a.Name = `<script>alert("x")</script>`
		out, err := r.Heading(a, nil)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "<script>")
	})
}

func TestInfoCounts(t *testing.T) {
	r := NewRenderer(language.English)

	t.Run("search tools show weekly downloads", func(t *testing.T) {
		a := testAddon()
		a.Type = TypeSearchTool

		a.WeeklyDownloads = 1
		out, err := r.Info(a, InfoOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(out), ">1 weekly download<")

		a.WeeklyDownloads = 0
		out, err = r.Info(a, InfoOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(out), ">0 weekly downloads<")

		a.WeeklyDownloads = 2345
		out, err = r.Info(a, InfoOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(out), ">2,345 weekly downloads<")
	})

	t.Run("download override forces the download line", func(t *testing.T) {
		a := testAddon() // extension, would normally show users
		out, err := r.Info(a, InfoOptions{ShowDownloads: true})
		require.NoError(t, err)
		assert.Contains(t, string(out), "weekly downloads")
		assert.NotContains(t, string(out), "average daily")
	})

	t.Run("other types show average daily users", func(t *testing.T) {
		a := testAddon()

		a.AverageDailyUsers = 1
		out, err := r.Info(a, InfoOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(out), ">1 average daily user<")

		a.AverageDailyUsers = 678
		out, err = r.Info(a, InfoOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(out), ">678 average daily users<")
	})
}

func TestInfoDates(t *testing.T) {
	r := NewRenderer(language.English)

	t.Run("added aliases render identically", func(t *testing.T) {
		a := testAddon()
		created, err := r.Info(a, InfoOptions{DateMode: DateCreated})
		require.NoError(t, err)
		asNew, err := r.Info(a, InfoOptions{DateMode: DateNew})
		require.NoError(t, err)
		newest, err := r.Info(a, InfoOptions{DateMode: DateNewest})
		require.NoError(t, err)

		assert.Equal(t, created, asNew)
		assert.Equal(t, created, newest)
		assert.Contains(t, string(created), "Added March 5, 2024")
	})

	t.Run("updated shows the last-update date", func(t *testing.T) {
		out, err := r.Info(testAddon(), InfoOptions{DateMode: DateUpdated})
		require.NoError(t, err)
		assert.Contains(t, string(out), "Updated November 20, 2025")
		assert.NotContains(t, string(out), "Added")
	})

	t.Run("unrecognized mode renders no date line", func(t *testing.T) {
		out, err := r.Info(testAddon(), InfoOptions{DateMode: "hottest"})
		require.NoError(t, err)
		assert.NotContains(t, string(out), "Added")
		assert.NotContains(t, string(out), "Updated")
	})

	t.Run("empty mode renders no date line", func(t *testing.T) {
		out, err := r.Info(testAddon(), InfoOptions{})
		require.NoError(t, err)
		assert.NotContains(t, string(out), "Added")
		assert.NotContains(t, string(out), "Updated")
	})
}
