package models

import "regexp"

// CatalogAnime is an anime entry of the public Jikan catalog.
type CatalogAnime struct {
	MalID     int64            `json:"mal_id"`
	Title     string           `json:"title"`
	Images    CatalogImages    `json:"images"`
	Synopsis  string           `json:"synopsis"`
	Trailer   CatalogTrailer   `json:"trailer"`
	Genres    []CatalogNamed   `json:"genres"`
	Studios   []CatalogNamed   `json:"studios"`
	Score     float64          `json:"score"`
	ScoredBy  int64            `json:"scored_by"`
	Episodes  int              `json:"episodes"`
	Status    string           `json:"status"`
	Rating    string           `json:"rating"`
	Aired     CatalogAired     `json:"aired"`
	Broadcast CatalogBroadcast `json:"broadcast"`
}

type CatalogImages struct {
	JPG struct {
		ImageURL      string `json:"image_url"`
		LargeImageURL string `json:"large_image_url"`
	} `json:"jpg"`
}

// CoverURL prefers the large image.
func (i CatalogImages) CoverURL() string {
	if i.JPG.LargeImageURL != "" {
		return i.JPG.LargeImageURL
	}
	return i.JPG.ImageURL
}

type CatalogTrailer struct {
	YoutubeID string `json:"youtube_id"`
	EmbedURL  string `json:"embed_url"`
}

var embedIDPattern = regexp.MustCompile(`/embed/([^?/]+)`)

// VideoID returns the YouTube video id of the trailer, taken from
// youtube_id or, failing that, from the embed URL. It returns "" when
// neither yields an id.
func (t CatalogTrailer) VideoID() string {
	if t.YoutubeID != "" {
		return t.YoutubeID
	}
	if m := embedIDPattern.FindStringSubmatch(t.EmbedURL); m != nil {
		return m[1]
	}
	return ""
}

type CatalogNamed struct {
	Name string `json:"name"`
}

type CatalogAired struct {
	From string `json:"from"`
}

type CatalogBroadcast struct {
	String string `json:"string"`
}
