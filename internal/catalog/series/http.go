// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package series

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

// Handler implements the HTTP layer for series management and the public
// series listing.
type Handler struct {
	service *Service
}

// NewHandler constructs a new series [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes attaches the CMS endpoints.
func (handler *Handler) RegisterAdminRoutes(api chi.Router) {
	api.Get("/series", handler.ListSeries)
	api.Get("/series/{id}", handler.GetSeries)
	api.Post("/series", handler.CreateSeries)
	api.Patch("/series/{id}", handler.UpdateSeries)
	api.Delete("/series/{id}", handler.DeleteSeries)
	api.Put("/series/{id}/artworks", handler.ReplaceArtworks)
}

// RegisterGalleryRoutes attaches the anonymous series listing.
func (handler *Handler) RegisterGalleryRoutes(api chi.Router) {
	api.Get("/series", handler.ListGallerySeries)
	api.Get("/series/{id}", handler.GetGallerySeries)
}

// # Wire Shapes

// adminSeriesResponse is the full series shape returned to the CMS.
type adminSeriesResponse struct {
	ID         string            `json:"id"`
	Titles     map[string]string `json:"titles"`
	ArtworkIDs []string          `json:"artworkIds"`
	RowCreated time.Time         `json:"rowCreated"`
	RowUpdated time.Time         `json:"rowUpdated"`
}

// gallerySeriesResponse is the single-language shape for visitors.
type gallerySeriesResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	ArtworkIDs []string `json:"artworkIds"`
}

func toAdminResponse(s *Series) adminSeriesResponse {
	titles := make(map[string]string, len(s.Translations))
	for _, tr := range s.Translations {
		titles[string(tr.Lang)] = tr.Title
	}
	return adminSeriesResponse{
		ID:         s.ID,
		Titles:     titles,
		ArtworkIDs: s.ArtworkIDs(),
		RowCreated: s.RowCreated,
		RowUpdated: s.RowUpdated,
	}
}

func toGalleryResponse(s *Series, lang i18n.Lang) gallerySeriesResponse {
	title := s.TitleFor(lang)
	if title == "" {
		title = s.TitleFor(i18n.DefaultLang)
	}
	return gallerySeriesResponse{
		ID:         s.ID,
		Title:      title,
		ArtworkIDs: s.ArtworkIDs(),
	}
}

// # Admin Endpoints

/*
GET /api/v1/admin/series.

Response:
  - 200: All series with titles and ordered artwork IDs
*/
func (handler *Handler) ListSeries(writer http.ResponseWriter, request *http.Request) {
	all, err := handler.service.ListSeries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(all, toAdminResponse))
}

/*
GET /api/v1/admin/series/{id}.

Response:
  - 200: Series object
  - 404: ErrNotFound
*/
func (handler *Handler) GetSeries(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	s, err := handler.service.GetSeries(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toAdminResponse(s))
}

/*
POST /api/v1/admin/series.

Response:
  - 201: Created series
  - 400: NOT_ENOUGH_TRANSLATIONS
  - 409: DUPLICATE_TITLE with "<title>|<lang>"
*/
func (handler *Handler) CreateSeries(writer http.ResponseWriter, request *http.Request) {
	var input CreateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.CreateSeries(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, toAdminResponse(s))
}

/*
PATCH /api/v1/admin/series/{id}.

Response:
  - 200: Updated series
  - 400: NO_TRANSLATIONS_PROVIDED
  - 404: ErrNotFound
  - 409: DUPLICATE_TITLE
*/
func (handler *Handler) UpdateSeries(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input UpdateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.UpdateSeries(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toAdminResponse(s))
}

/*
PUT /api/v1/admin/series/{id}/artworks.

Description: Replaces the ordered association wholesale. Body
{artworkIds: []}; position becomes the display order.

Response:
  - 200: Series with the new sequence
  - 400: Duplicate artwork within the request
  - 404: ErrNotFound (series), or unknown artwork IDs as
    errors[NOT_FOUND] = ["<id>|artworkIds", ...]
*/
func (handler *Handler) ReplaceArtworks(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input ReplaceArtworksRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.ReplaceArtworks(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toAdminResponse(s))
}

/*
DELETE /api/v1/admin/series/{id}.

Response:
  - 204: Deleted
  - 404: ErrNotFound
  - 409: IN_USE while the series still has artwork associations
*/
func (handler *Handler) DeleteSeries(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteSeries(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Gallery Endpoints

/*
GET /api/v1/gallery/series.

Response:
  - 200: Localized series list
*/
func (handler *Handler) ListGallerySeries(writer http.ResponseWriter, request *http.Request) {
	lang := i18n.Negotiate(request.Header.Get("Accept-Language"))

	all, err := handler.service.ListSeries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items := slice.Map(all, func(s *Series) gallerySeriesResponse {
		return toGalleryResponse(s, lang)
	})
	respond.OK(writer, items)
}

/*
GET /api/v1/gallery/series/{id}.

Response:
  - 200: Localized series
  - 404: ErrNotFound
*/
func (handler *Handler) GetGallerySeries(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	lang := i18n.Negotiate(request.Header.Get("Accept-Language"))

	s, err := handler.service.GetSeries(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, toGalleryResponse(s, lang))
}
