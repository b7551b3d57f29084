// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package genre

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/soyounglim/gallerim/internal/platform/i18n"
	requestutil "github.com/soyounglim/gallerim/internal/platform/request"
	"github.com/soyounglim/gallerim/internal/platform/respond"
	"github.com/soyounglim/gallerim/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for genre management and the public
// genre listing.
type Handler struct {
	service *Service
}

// NewHandler constructs a new genre [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes attaches the CMS endpoints.
func (handler *Handler) RegisterAdminRoutes(api chi.Router) {
	api.Get("/genres", handler.ListGenres)
	api.Get("/genres/{id}", handler.GetGenre)
	api.Post("/genres", handler.CreateGenre)
	api.Patch("/genres/{id}", handler.UpdateGenre)
	api.Delete("/genres/{id}", handler.DeleteGenre)
}

// RegisterGalleryRoutes attaches the anonymous, localized genre listing used
// by the gallery's filter bar.
func (handler *Handler) RegisterGalleryRoutes(api chi.Router) {
	api.Get("/genres", handler.ListGalleryGenres)
}

// # Wire Shapes

// adminGenreResponse is the full genre shape returned to the CMS.
type adminGenreResponse struct {
	ID           string            `json:"id"`
	Names        map[string]string `json:"names"`
	ArtworkCount int               `json:"artworkCount"`
	RowCreated   time.Time         `json:"rowCreated"`
	RowUpdated   time.Time         `json:"rowUpdated"`
}

// galleryGenreResponse is the single-language shape for visitors.
type galleryGenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toAdminResponse(g *Genre) adminGenreResponse {
	names := make(map[string]string, len(g.Translations))
	for _, tr := range g.Translations {
		names[string(tr.Lang)] = tr.Name
	}
	return adminGenreResponse{
		ID:           g.ID,
		Names:        names,
		ArtworkCount: g.ArtworkCount,
		RowCreated:   g.RowCreated,
		RowUpdated:   g.RowUpdated,
	}
}

// # Admin Endpoints

/*
GET /api/v1/admin/genres.

Response:
  - 200: Full taxonomy with artwork counts
*/
func (handler *Handler) ListGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(genres, toAdminResponse))
}

/*
GET /api/v1/admin/genres/{id}.

Response:
  - 200: Genre object
  - 404: ErrNotFound
*/
func (handler *Handler) GetGenre(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	g, err := handler.service.GetGenre(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toAdminResponse(g))
}

/*
POST /api/v1/admin/genres.

Description: Creates a genre; names for all three languages are mandatory.

Response:
  - 201: Created genre
  - 400: NOT_ENOUGH_TRANSLATIONS listing the missing language codes
  - 409: DUPLICATE_NAME with "<name>|<lang>"
*/
func (handler *Handler) CreateGenre(writer http.ResponseWriter, request *http.Request) {
	var input CreateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	g, err := handler.service.CreateGenre(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, toAdminResponse(g))
}

/*
PATCH /api/v1/admin/genres/{id}.

Description: Renames any subset of languages.

Response:
  - 200: Updated genre
  - 400: NO_TRANSLATIONS_PROVIDED when the payload carries nothing
  - 404: ErrNotFound
  - 409: DUPLICATE_NAME
*/
func (handler *Handler) UpdateGenre(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input UpdateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	g, err := handler.service.UpdateGenre(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toAdminResponse(g))
}

/*
DELETE /api/v1/admin/genres/{id}.

Response:
  - 204: Deleted
  - 404: ErrNotFound
  - 409: IN_USE while artworks still reference the genre
*/
func (handler *Handler) DeleteGenre(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteGenre(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Gallery Endpoints

/*
GET /api/v1/gallery/genres.

Description: Localized genre names for the gallery filter bar.

Response:
  - 200: [{id, name}] in the negotiated language
*/
func (handler *Handler) ListGalleryGenres(writer http.ResponseWriter, request *http.Request) {
	lang := i18n.Negotiate(request.Header.Get("Accept-Language"))

	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items := slice.Map(genres, func(g *Genre) galleryGenreResponse {
		name := g.NameFor(lang)
		if name == "" {
			name = g.NameFor(i18n.DefaultLang)
		}
		return galleryGenreResponse{ID: g.ID, Name: name}
	})
	respond.OK(writer, items)
}
