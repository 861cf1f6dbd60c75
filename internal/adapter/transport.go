package adapter

import (
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/anime-verse/internal/app"
	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/internal/utils"
	"github.com/go-resty/resty/v2"
)

const headerRequestID = "X-Request-ID"

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// newClient builds a JSON client with request-id propagation and response
// logging installed.
func newClient(baseURL string, timeout time.Duration, log *logger.Logger) *utils.HTTPClient {
	client := utils.NewHTTPClient(baseURL, timeout)
	ids := utils.NewUUIDGenerator()

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		id, ok := utils.GetRequestIDFromContext(req.Context())
		if !ok {
			id = ids.Generate()
		}
		req.SetHeader(headerRequestID, id)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("func", "adapter.OnAfterResponse").
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Str("request_id", resp.Request.Header.Get(headerRequestID)).
			Msg("http response")
		return nil
	})

	return client
}

// execute sends req and decodes a 2xx body into out (when non-nil).
func execute(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return app.NewNetworkError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return app.NewServerError(resp.StatusCode(), app.MsgMalformedResponse, err)
	}

	return nil
}
