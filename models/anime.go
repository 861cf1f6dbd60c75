package models

import "time"

// ListStatus is the watching status of a saved list entry.
type ListStatus string

const (
	StatusWatching   ListStatus = "Watching"
	StatusCompleted  ListStatus = "Completed"
	StatusDropped    ListStatus = "Dropped"
	StatusWatchLater ListStatus = "Watch later"
)

// ListStatuses lists every accepted ListStatus in display order.
var ListStatuses = []ListStatus{StatusWatching, StatusCompleted, StatusDropped, StatusWatchLater}

// Valid reports whether s is one of ListStatuses.
func (s ListStatus) Valid() bool {
	for _, v := range ListStatuses {
		if s == v {
			return true
		}
	}
	return false
}

const (
	// DateLayout is the layout of watching dates.
	DateLayout = "2006-01-02"
	// ZeroDate is the value the backend returns for an unset date.
	ZeroDate = "0001-01-01"
)

// AnimeSnapshot is a denormalized copy of catalog metadata stored alongside
// a list entry. It is written once when the entry is saved and may drift
// from the live catalog afterwards.
type AnimeSnapshot struct {
	Title                string   `json:"title"`
	Synopsis             string   `json:"synopsis"`
	CoverImageURL        string   `json:"cover_image_url"`
	TotalEpisodes        int      `json:"total_episodes"`
	Status               string   `json:"status"`
	ReleaseDate          string   `json:"release_date"`
	Rating               string   `json:"rating"`
	Score                float64  `json:"score"`
	Genres               []string `json:"genres"`
	Studios              []string `json:"studios"`
	BroadcastInformation string   `json:"broadcast_information"`
}

// SaveAnimeRequest is the body of POST /v1/user_anime_list.
type SaveAnimeRequest struct {
	UserID               ID            `json:"user_id"`
	AnimeID              int64         `json:"anime_id"`
	Status               ListStatus    `json:"status"`
	CurrentEpisode       int           `json:"current_episode"`
	Score                *int          `json:"score,omitempty"`
	StartedWatchingDate  string        `json:"started_watching_date,omitempty"`
	FinishedWatchingDate string        `json:"finished_watching_date,omitempty"`
	Anime                AnimeSnapshot `json:"anime"`
}

// AnimeListEntry is a saved entry of a user's list.
type AnimeListEntry struct {
	ID                   ID            `json:"id"`
	UserID               ID            `json:"user_id"`
	AnimeID              int64         `json:"anime_id"`
	Status               ListStatus    `json:"status"`
	CurrentEpisode       int           `json:"current_episode"`
	Score                *int          `json:"score,omitempty"`
	StartedWatchingDate  string        `json:"started_watching_date,omitempty"`
	FinishedWatchingDate string        `json:"finished_watching_date,omitempty"`
	Anime                AnimeSnapshot `json:"anime"`
	CreatedAt            time.Time     `json:"created_at"`
	Version              int           `json:"version"`
}

// StartedAt returns the parsed start date, false when unset.
func (e AnimeListEntry) StartedAt() (time.Time, bool) {
	return ParseListDate(e.StartedWatchingDate)
}

// FinishedAt returns the parsed finish date, false when unset.
func (e AnimeListEntry) FinishedAt() (time.Time, bool) {
	return ParseListDate(e.FinishedWatchingDate)
}

// ParseListDate parses a YYYY-MM-DD watching date. Empty values, the
// backend zero date and malformed values report false.
func ParseListDate(s string) (time.Time, bool) {
	if s == "" || s == ZeroDate {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
