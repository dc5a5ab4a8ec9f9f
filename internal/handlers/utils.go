package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// isBodyTooLarge reports whether err came from a request body cut off by
// http.MaxBytesReader or echo's BodyLimit middleware.
func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return true
	}
	var httpErr *echo.HTTPError
	return errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge
}

// isMissingUpload reports whether the multipart form lacks the named file
func isMissingUpload(err error) bool {
	return errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart)
}

// missingQueryParams lists the named query parameters that are absent or blank
func missingQueryParams(c echo.Context, names ...string) []string {
	var missing []string
	for _, name := range names {
		if strings.TrimSpace(c.QueryParam(name)) == "" {
			missing = append(missing, name+" is required")
		}
	}
	return missing
}

// uploadName returns the client supplied file name, used for format detection
func uploadName(fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}
	return fh.Filename
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
