package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/anime-verse/models"
)

const (
	titleColumnWidth   = 40
	synopsisPageWidth  = 72
	youtubeWatchPrefix = "https://www.youtube.com/watch?v="
)

// RenderSession describes the current session state.
func RenderSession(state models.SessionState, session models.Session, ok bool) string {
	if !ok {
		return renderPage("SESSION", "State: "+state.String(), "login <email> to sign in")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "State:     %s\n", state)
	b.WriteString(renderUserFields(session.User))
	if !session.Token.Expiry.IsZero() {
		fmt.Fprintf(&b, "\nExpires:   %s", session.Token.Expiry.Local().Format("2006-01-02 15:04"))
	}
	if session.Degraded {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("offline: showing the last saved profile"))
	}

	return renderPage("SESSION", b.String(), "")
}

// RenderUser describes a profile returned by registration or activation.
func RenderUser(title string, user models.User) string {
	return renderPage(title, renderUserFields(user), "")
}

func renderUserFields(user models.User) string {
	activated := "no"
	if user.Activated {
		activated = "yes"
	}
	return fmt.Sprintf("User ID:   %s\nUsername:  %s\nEmail:     %s\nActivated: %s",
		valueOrDash(user.ID.String()), valueOrDash(user.Username), valueOrDash(user.Email), activated)
}

// RenderAnimeList renders the entries of a user's list.
func RenderAnimeList(entries []models.AnimeListEntry) string {
	if len(entries) == 0 {
		return renderPage("MY LIST", "", "save <anime-id> to add an anime")
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		episodes := strconv.Itoa(e.CurrentEpisode)
		if e.Anime.TotalEpisodes > 0 {
			episodes += "/" + strconv.Itoa(e.Anime.TotalEpisodes)
		}
		score := "-"
		if e.Score != nil {
			score = strconv.Itoa(*e.Score)
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.AnimeID, 10),
			fitText(valueOrDash(e.Anime.Title), titleColumnWidth),
			string(e.Status),
			episodes,
			score,
			listDate(e.StartedAt()),
			listDate(e.FinishedAt()),
		})
	}

	table := renderTable([]string{"ID", "Title", "Status", "Episodes", "Score", "Started", "Finished"}, rows)
	return renderPage("MY LIST", table, fmt.Sprintf("%d entries", len(entries)))
}

// RenderCatalog renders a page of catalog entries.
func RenderCatalog(title string, list []models.CatalogAnime) string {
	if len(list) == 0 {
		return renderPage(title, "nothing found", "")
	}

	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			strconv.FormatInt(a.MalID, 10),
			fitText(valueOrDash(a.Title), titleColumnWidth),
			formatScore(a.Score),
			episodeCount(a.Episodes),
			valueOrDash(a.Status),
		})
	}

	table := renderTable([]string{"ID", "Title", "Score", "Episodes", "Status"}, rows)
	return renderPage(title, table, "show <id> for details")
}

// RenderAnimeDetails renders a single catalog entry.
func RenderAnimeDetails(anime models.CatalogAnime) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ID:        %d\n", anime.MalID)
	fmt.Fprintf(&b, "Score:     %s\n", formatScore(anime.Score))
	fmt.Fprintf(&b, "Episodes:  %s\n", episodeCount(anime.Episodes))
	fmt.Fprintf(&b, "Status:    %s\n", valueOrDash(anime.Status))
	fmt.Fprintf(&b, "Rating:    %s\n", valueOrDash(anime.Rating))
	fmt.Fprintf(&b, "Genres:    %s\n", valueOrDash(joinNames(anime.Genres)))
	fmt.Fprintf(&b, "Studios:   %s\n", valueOrDash(joinNames(anime.Studios)))
	fmt.Fprintf(&b, "Broadcast: %s\n", valueOrDash(anime.Broadcast.String))
	fmt.Fprintf(&b, "Cover:     %s\n", valueOrDash(anime.Images.CoverURL()))
	fmt.Fprintf(&b, "Trailer:   %s\n", valueOrDash(TrailerURL(anime.Trailer)))

	if synopsis := strings.TrimSpace(anime.Synopsis); synopsis != "" {
		b.WriteString("\n")
		b.WriteString(wrap(synopsis, synopsisPageWidth))
	}

	return renderPage(strings.ToUpper(valueOrDash(anime.Title)), strings.TrimRight(b.String(), "\n"),
		fmt.Sprintf("save %d -status Watching to add it to your list", anime.MalID))
}

// RenderQuotes renders the backend quotes.
func RenderQuotes(quotes []models.Quote) string {
	var b strings.Builder
	for i, q := range quotes {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%q\n  - %s", q.Content, valueOrDash(q.Author))
	}
	return renderPage("QUOTES", b.String(), "")
}

// RenderBuildInfo renders the build metadata of the binary.
func RenderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: AnimeVerse\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())

	return renderPage("ABOUT", b.String(), "")
}

// TrailerURL returns the YouTube watch URL of trailer, "" when it has none.
func TrailerURL(trailer models.CatalogTrailer) string {
	id := trailer.VideoID()
	if id == "" {
		return ""
	}
	return youtubeWatchPrefix + id
}

func listDate(t time.Time, ok bool) string {
	if !ok {
		return "-"
	}
	return t.Format(models.DateLayout)
}

func episodeCount(n int) string {
	if n <= 0 {
		return "?"
	}
	return strconv.Itoa(n)
}

func joinNames(named []models.CatalogNamed) string {
	names := make([]string, 0, len(named))
	for _, n := range named {
		names = append(names, n.Name)
	}
	return strings.Join(names, ", ")
}

// wrap breaks text into lines of at most width runes at word boundaries.
func wrap(text string, width int) string {
	var (
		b    strings.Builder
		line int
	)
	for _, word := range strings.Fields(text) {
		n := len([]rune(word))
		if line > 0 && line+1+n > width {
			b.WriteString("\n")
			line = 0
		}
		if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += n
	}
	return b.String()
}
