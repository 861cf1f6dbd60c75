package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/anime-verse/internal/app"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into an [app.Error]. It returns
// nil for 2xx responses.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message, fields := parseErrorBody(resp.Body())
	return &app.Error{
		Kind:    app.KindForStatus(resp.StatusCode()),
		Status:  resp.StatusCode(),
		Message: message,
		Fields:  fields,
	}
}

// parseErrorBody extracts a message and optional field errors from one of
//
//	{"error": "msg"}
//	{"error": {"message": "msg"}}
//	{"error": {"field": "msg", ...}}
//	{"message": "msg"}
//
// Anything else yields the generic message.
func parseErrorBody(body []byte) (string, map[string]string) {
	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return app.MsgGenericError, nil
	}

	if len(envelope.Error) > 0 {
		var text string
		if err := json.Unmarshal(envelope.Error, &text); err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}

		var object map[string]any
		if err := json.Unmarshal(envelope.Error, &object); err == nil && len(object) > 0 {
			if msg, ok := object["message"].(string); ok && msg != "" {
				return msg, nil
			}

			fields := make(map[string]string, len(object))
			for k, v := range object {
				fields[k] = fmt.Sprint(v)
			}
			return app.MsgInvalidInput, fields
		}
	}

	if strings.TrimSpace(envelope.Message) != "" {
		return envelope.Message, nil
	}

	return app.MsgGenericError, nil
}
