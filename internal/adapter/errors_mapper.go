package adapter

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError classifies a received response. 2xx yields nil.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch {
	case status == http.StatusUnauthorized:
		return newTransportError(ErrUnauthorized, status, body)
	case status == http.StatusNotFound:
		return newTransportError(ErrNotFound, status, body)
	case status >= http.StatusInternalServerError && status <= 599:
		return newTransportError(ErrServerUnavailable, status, body)
	default:
		if body == "" {
			body = http.StatusText(status)
		}
		return newTransportError(ErrUnknown, status, body)
	}
}

// mapRequestError classifies a failure that happened before any response
// arrived: an unbuildable URL or a network failure.
func mapRequestError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op == "parse" {
		return newTransportError(ErrInvalidRequest, 0, err.Error())
	}
	return newTransportError(ErrNetwork, 0, err.Error())
}

func decodingError(err error) error {
	return newTransportError(ErrDecodingFailed, 0, err.Error())
}
