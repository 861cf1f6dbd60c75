package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalStringAndNumber(t *testing.T) {
	var u struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"u1","b":42,"c":null}`), &u))

	assert.Equal(t, ID("u1"), u.A)
	assert.Equal(t, ID("42"), u.B)
	assert.Equal(t, ID(""), u.C)
}

func TestID_MarshalKeepsWireType(t *testing.T) {
	b, err := json.Marshal(map[string]ID{"num": "42", "str": "u1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"num":42,"str":"u1"}`, string(b))
}

func TestID_UnmarshalRejectsObjects(t *testing.T) {
	var id ID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &id))
}

func TestAuthenticationToken_Expired(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, AuthenticationToken{Token: "t"}.Expired(now), "zero expiry never expires")
	assert.False(t, AuthenticationToken{Token: "t", Expiry: now.Add(time.Second)}.Expired(now))
	assert.True(t, AuthenticationToken{Token: "t", Expiry: now}.Expired(now))
	assert.True(t, AuthenticationToken{Token: "t", Expiry: now.Add(-time.Hour)}.Expired(now))
}

func TestCredentialEnvelope_Complete(t *testing.T) {
	user := &User{ID: "u1"}

	assert.True(t, CredentialEnvelope{Token: AuthenticationToken{Token: "abc"}, User: user}.Complete())
	assert.False(t, CredentialEnvelope{User: user}.Complete())
	assert.False(t, CredentialEnvelope{Token: AuthenticationToken{Token: "abc"}}.Complete())
	assert.False(t, CredentialEnvelope{Token: AuthenticationToken{Token: "abc"}, User: &User{}}.Complete())
}

func TestListStatus_Valid(t *testing.T) {
	for _, s := range ListStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, ListStatus("watching").Valid())
	assert.False(t, ListStatus("").Valid())
}

func TestParseListDate(t *testing.T) {
	d, ok := ParseListDate("2025-11-26")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 11, 26, 0, 0, 0, 0, time.UTC), d)

	for _, s := range []string{"", ZeroDate, "26/11/2025", "2025-13-01"} {
		_, ok := ParseListDate(s)
		assert.False(t, ok, s)
	}

	e := AnimeListEntry{StartedWatchingDate: "2025-01-02", FinishedWatchingDate: ZeroDate}
	_, started := e.StartedAt()
	_, finished := e.FinishedAt()
	assert.True(t, started)
	assert.False(t, finished)
}

func TestSaveAnimeRequest_OmitsUnsetOptionals(t *testing.T) {
	b, err := json.Marshal(SaveAnimeRequest{UserID: "7", AnimeID: 1, Status: StatusWatchLater})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.NotContains(t, raw, "score")
	assert.NotContains(t, raw, "started_watching_date")
	assert.NotContains(t, raw, "finished_watching_date")
	assert.Equal(t, float64(7), raw["user_id"])
}

func TestCatalogTrailer_VideoID(t *testing.T) {
	tests := []struct {
		name    string
		trailer CatalogTrailer
		want    string
	}{
		{"youtube id wins", CatalogTrailer{YoutubeID: "abc", EmbedURL: "https://www.youtube.com/embed/zzz"}, "abc"},
		{"embed url", CatalogTrailer{EmbedURL: "https://www.youtube-nocookie.com/embed/84WIaK3bl_s?enablejsapi=1"}, "84WIaK3bl_s"},
		{"no trailer", CatalogTrailer{}, ""},
		{"unrelated url", CatalogTrailer{EmbedURL: "https://example.com/watch"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.trailer.VideoID())
		})
	}
}

func TestCatalogImages_CoverURL(t *testing.T) {
	var img CatalogImages
	img.JPG.ImageURL = "small.jpg"
	assert.Equal(t, "small.jpg", img.CoverURL())

	img.JPG.LargeImageURL = "large.jpg"
	assert.Equal(t, "large.jpg", img.CoverURL())
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")
	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build version: 1.0.0")
}

func TestID_NonCanonicalNumbersStayStrings(t *testing.T) {
	for _, id := range []ID{"007", "+5", "-1", "1e3"} {
		b, err := json.Marshal(id)
		require.NoError(t, err)
		assert.Equal(t, `"`+string(id)+`"`, string(b))
	}
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", SessionUninitialized.String())
	assert.Equal(t, "restoring", SessionRestoring.String())
	assert.Equal(t, "anonymous", SessionAnonymous.String())
	assert.Equal(t, "authenticated", SessionAuthenticated.String())
	assert.Equal(t, "unknown", SessionState(42).String())
}
