package models

// Response envelopes of the backend and the catalog. The backend wraps every
// payload in a named top-level key; the catalog always uses "data".

type UserResponse struct {
	User User `json:"user"`
}

type LoginResponse struct {
	AuthenticationToken AuthenticationToken `json:"authentication_token"`
}

type AnimeListEntryResponse struct {
	Entry AnimeListEntry `json:"user_anime_list"`
}

type AnimeListResponse struct {
	Entries []AnimeListEntry `json:"user_anime_lists"`
}

type QuotesResponse struct {
	Quotes []Quote `json:"quotes"`
}

type CatalogAnimeResponse struct {
	Data CatalogAnime `json:"data"`
}

type CatalogAnimeListResponse struct {
	Data []CatalogAnime `json:"data"`
}
