// Package web holds the request parsing helpers shared by the gymstats handlers.
package web

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/2beens/gymtracker/internal/auth"
	"github.com/2beens/gymtracker/internal/gymstats/apperr"
	"github.com/2beens/gymtracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Actor returns the authenticated user id, writing a 401 when there is none.
func Actor(w http.ResponseWriter, r *http.Request) (int, bool) {
	actorID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}
	return actorID, true
}

// PathID parses a positive integer path variable, writing a 400 when invalid.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		apperr.WriteBadRequest(w, name, "invalid "+name)
		return 0, false
	}
	return id, true
}

// DecodeJSON decodes a JSON request body into dst, writing a 400 on a wrong
// content type or malformed body.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != pkg.ContentType.JSON {
		apperr.WriteBadRequest(w, "", "invalid content type")
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Debugf("%s %s, unmarshal json params: %s", r.Method, r.URL.Path, err)
		apperr.WriteBadRequest(w, "", "malformed json body")
		return false
	}
	return true
}

// Page parses the page and page_size query params, writing a 400 when invalid.
func Page(w http.ResponseWriter, r *http.Request, sizing pkg.PageSizing) (pkg.Page, bool) {
	page, err := pkg.ParsePage(r, sizing)
	if err != nil {
		apperr.WriteBadRequest(w, "page", err.Error())
		return pkg.Page{}, false
	}
	return page, true
}

// OptionalBool parses an optional boolean query param.
func OptionalBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &b, nil
}
