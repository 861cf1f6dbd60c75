// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/anime-verse/models"
)

// Field name constants used to scope [AnimeListValidator].
const (
	FieldUserID               = "user_id"
	FieldAnimeID              = "anime_id"
	FieldStatus               = "status"
	FieldCurrentEpisode       = "current_episode"
	FieldScore                = "score"
	FieldStartedWatchingDate  = "started_watching_date"
	FieldFinishedWatchingDate = "finished_watching_date"
	FieldTitle                = "anime.title"
)

const (
	MinScore = 1
	MaxScore = 10
)

// AnimeListValidator validates list-entry save requests.
//
// Supported types: models.SaveAnimeRequest / *models.SaveAnimeRequest.
// The user id is filled in from the session after validation, so it is only
// checked when FieldUserID is requested explicitly.
type AnimeListValidator struct{}

// NewAnimeListValidator constructs an AnimeListValidator.
func NewAnimeListValidator() Validator {
	return &AnimeListValidator{}
}

func (v *AnimeListValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SaveAnimeRequest:
		return v.validateSaveRequest(value, fields...)
	case *models.SaveAnimeRequest:
		return v.validateSaveRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AnimeListValidator) validateSaveRequest(req models.SaveAnimeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldAnimeID, FieldStatus, FieldCurrentEpisode, FieldScore,
			FieldStartedWatchingDate, FieldFinishedWatchingDate, FieldTitle,
		}
	}

	errs := make(fieldErrors)
	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID == "" {
				errs.add(FieldUserID, msgRequired)
			}
		case FieldAnimeID:
			if req.AnimeID <= 0 {
				errs.add(FieldAnimeID, msgInvalidAnimeID)
			}
		case FieldStatus:
			if !req.Status.Valid() {
				errs.add(FieldStatus, msgInvalidStatus)
			}
		case FieldCurrentEpisode:
			switch {
			case req.CurrentEpisode < 0:
				errs.add(FieldCurrentEpisode, msgNegativeEpisode)
			case req.Anime.TotalEpisodes > 0 && req.CurrentEpisode > req.Anime.TotalEpisodes:
				errs.add(FieldCurrentEpisode, msgEpisodeTooLarge)
			}
		case FieldScore:
			if req.Score != nil && (*req.Score < MinScore || *req.Score > MaxScore) {
				errs.add(FieldScore, msgInvalidScore)
			}
		case FieldStartedWatchingDate:
			if _, ok := parseOptionalDate(req.StartedWatchingDate); !ok {
				errs.add(FieldStartedWatchingDate, msgInvalidDate)
			}
		case FieldFinishedWatchingDate:
			finished, ok := parseOptionalDate(req.FinishedWatchingDate)
			if !ok {
				errs.add(FieldFinishedWatchingDate, msgInvalidDate)
				continue
			}
			started, ok := parseOptionalDate(req.StartedWatchingDate)
			if ok && !started.IsZero() && !finished.IsZero() && finished.Before(started) {
				errs.add(FieldFinishedWatchingDate, msgFinishedTooEarly)
			}
		case FieldTitle:
			if strings.TrimSpace(req.Anime.Title) == "" {
				errs.add(FieldTitle, msgRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

// parseOptionalDate parses a YYYY-MM-DD date. An empty value is valid and
// yields the zero time.
func parseOptionalDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
