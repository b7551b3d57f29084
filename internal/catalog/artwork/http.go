// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

package artwork

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/soyounglim/gallerim/internal/platform/apperr"
	"github.com/soyounglim/gallerim/internal/platform/i18n"
	"github.com/soyounglim/gallerim/internal/platform/imagestore"
	requestutil "github.com/soyounglim/gallerim/internal/platform/request"
	"github.com/soyounglim/gallerim/internal/platform/respond"
	"github.com/soyounglim/gallerim/pkg/pagination"
	"github.com/soyounglim/gallerim/pkg/pointer"
	"github.com/soyounglim/gallerim/pkg/query"
	"github.com/soyounglim/gallerim/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for artwork management and the public
// gallery listing.
type Handler struct {
	service *Service
	images  imagestore.Resolver
}

// NewHandler constructs a new artwork [Handler].
func NewHandler(service *Service, images imagestore.Resolver) *Handler {
	return &Handler{service: service, images: images}
}

// RegisterAdminRoutes attaches the CMS endpoints. The caller mounts this
// router behind authentication and the admin role gate.
func (handler *Handler) RegisterAdminRoutes(api chi.Router) {
	api.Get("/artworks", handler.ListArtworks)
	api.Get("/artworks/{id}", handler.GetArtwork)
	api.Post("/artworks", handler.CreateArtwork)
	api.Patch("/artworks/{id}", handler.UpdateArtwork)
	api.Delete("/artworks/{id}", handler.DeleteArtwork)
	api.Post("/artworks/{id}/publish", handler.PublishArtwork)
	api.Patch("/artworks/status", handler.ChangeStatus)
}

// RegisterGalleryRoutes attaches the anonymous, published-only endpoints.
func (handler *Handler) RegisterGalleryRoutes(api chi.Router) {
	api.Get("/artworks", handler.ListGallery)
	api.Get("/artworks/{id}", handler.GetGalleryArtwork)
}

// # Wire Shapes

// translationPayload is the per-language block of an admin response.
type translationPayload struct {
	Title       string  `json:"title"`
	ShortReview *string `json:"shortReview"`
}

// adminArtworkResponse is the full artwork shape returned to the CMS.
type adminArtworkResponse struct {
	ID           string                        `json:"id"`
	ImageKey     string                        `json:"imageKey"`
	ImageURL     string                        `json:"imageUrl"`
	CreatedAt    *time.Time                    `json:"createdAt"`
	PlayedOn     *string                       `json:"playedOn"`
	Rating       *int                          `json:"rating"`
	IsDraft      bool                          `json:"isDraft"`
	IsVertical   bool                          `json:"isVertical"`
	GenreIDs     []string                      `json:"genreIds"`
	Translations map[string]translationPayload `json:"translations"`
	RowCreated   time.Time                     `json:"rowCreated"`
	RowUpdated   time.Time                     `json:"rowUpdated"`
}

// galleryArtworkResponse is the localized shape served to anonymous visitors.
type galleryArtworkResponse struct {
	ID          string     `json:"id"`
	ImageURL    string     `json:"imageUrl"`
	Title       string     `json:"title"`
	ShortReview *string    `json:"shortReview"`
	CreatedAt   *time.Time `json:"createdAt"`
	PlayedOn    *string    `json:"playedOn"`
	Rating      *int       `json:"rating"`
	IsVertical  bool       `json:"isVertical"`
	GenreIDs    []string   `json:"genreIds"`
}

func (handler *Handler) toAdminResponse(a *Artwork) adminArtworkResponse {
	translations := make(map[string]translationPayload, len(a.Translations))
	for _, tr := range a.Translations {
		translations[string(tr.Lang)] = translationPayload{
			Title:       tr.Title,
			ShortReview: tr.ShortReview,
		}
	}

	return adminArtworkResponse{
		ID:           a.ID,
		ImageKey:     a.ImageKey,
		ImageURL:     handler.images.URL(a.ImageKey),
		CreatedAt:    a.CreatedAt,
		PlayedOn:     (*string)(a.PlayedOn),
		Rating:       a.Rating,
		IsDraft:      a.IsDraft,
		IsVertical:   a.IsVertical,
		GenreIDs:     a.GenreIDs,
		Translations: translations,
		RowCreated:   a.RowCreated,
		RowUpdated:   a.RowUpdated,
	}
}

// toGalleryResponse flattens the artwork to one negotiated language, falling
// back to the default language when that translation is missing.
func (handler *Handler) toGalleryResponse(a *Artwork, lang i18n.Lang) galleryArtworkResponse {
	tr := a.TranslationFor(lang)
	if tr == nil {
		tr = a.TranslationFor(i18n.DefaultLang)
	}

	response := galleryArtworkResponse{
		ID:         a.ID,
		ImageURL:   handler.images.URL(a.ImageKey),
		CreatedAt:  a.CreatedAt,
		PlayedOn:   (*string)(a.PlayedOn),
		Rating:     a.Rating,
		IsVertical: a.IsVertical,
		GenreIDs:   a.GenreIDs,
	}
	if tr != nil {
		response.Title = tr.Title
		response.ShortReview = tr.ShortReview
	}
	return response
}

// # Admin Endpoints

/*
GET /api/v1/admin/artworks.

Description: Paginated artwork list for the CMS, drafts included.

Request:
  - draft: bool (optional draft-state filter)
  - genres: comma-separated genre IDs
  - platform: string
  - q: string (title search)
  - limit, page: pagination

Response:
  - 200: Paginated artwork list
*/
func (handler *Handler) ListArtworks(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{
		GenreIDs: query.StringSlice(request.URL.Query().Get("genres")),
		PlayedOn: request.URL.Query().Get("platform"),
		Query:    request.URL.Query().Get("q"),
	}
	switch request.URL.Query().Get("draft") {
	case "true":
		filter.Draft = pointer.To(true)
	case "false":
		filter.Draft = pointer.To(false)
	}

	artworks, total, err := handler.service.ListArtworks(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items := slice.Map(artworks, handler.toAdminResponse)
	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/admin/artworks/{id}.

Response:
  - 200: Full artwork object
  - 404: ErrNotFound
*/
func (handler *Handler) GetArtwork(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	a, err := handler.service.GetArtwork(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.toAdminResponse(a))
}

/*
POST /api/v1/admin/artworks.

Description: Creates a draft artwork with all three translations.

Response:
  - 201: Created artwork
  - 400: Validation failure
  - 404: Unknown genre reference
*/
func (handler *Handler) CreateArtwork(writer http.ResponseWriter, request *http.Request) {
	var input CreateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.CreateArtwork(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, handler.toAdminResponse(a))
}

/*
PATCH /api/v1/admin/artworks/{id}.

Description: Sparse update; absent fields are untouched.

Response:
  - 200: Updated artwork
  - 400: Validation failure or empty payload
  - 404: ErrNotFound
*/
func (handler *Handler) UpdateArtwork(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var input UpdateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	a, err := handler.service.UpdateArtwork(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, handler.toAdminResponse(a))
}

/*
DELETE /api/v1/admin/artworks/{id}.

Response:
  - 204: Deleted
  - 404: ErrNotFound
  - 409: ALREADY_PUBLISHED (unpublish first)
*/
func (handler *Handler) DeleteArtwork(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteArtwork(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
POST /api/v1/admin/artworks/{id}/publish.

Response:
  - 200: Published
  - 400: PUBLISH_BLOCKED with the aggregated rule failures
  - 409: ALREADY_PUBLISHED
*/
func (handler *Handler) PublishArtwork(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.PublishArtwork(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{"id": id, "isDraft": false})
}

/*
PATCH /api/v1/admin/artworks/status.

Description: Bulk publish/unpublish. Body {ids: [], publish: bool}. The batch
is best-effort: eligible artworks flip state, the rest are reported.

Response:
  - 200: Every requested artwork changed (or was already in the target state)
  - 207: Partial success; errors maps kind -> ["<identifier>|<field>", ...]
  - 400: Empty ID list
*/
func (handler *Handler) ChangeStatus(writer http.ResponseWriter, request *http.Request) {
	var input StatusChangeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	plan, err := handler.service.ChangeStatus(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	payload := map[string]any{"ids": plan.IDs, "publish": input.Publish}
	if plan.Partial() {
		respond.MultiStatus(writer, payload, plan.Errors)
		return
	}
	respond.OK(writer, payload)
}

// # Gallery Endpoints

/*
GET /api/v1/gallery/artworks.

Description: Paginated list of published artworks, localized to the language
negotiated from Accept-Language.

Response:
  - 200: Paginated localized list
*/
func (handler *Handler) ListGallery(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	lang := i18n.Negotiate(request.Header.Get("Accept-Language"))

	filter := Filter{
		Draft:    pointer.To(false),
		GenreIDs: query.StringSlice(request.URL.Query().Get("genres")),
		PlayedOn: request.URL.Query().Get("platform"),
		Query:    request.URL.Query().Get("q"),
	}

	artworks, total, err := handler.service.ListArtworks(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items := slice.Map(artworks, func(a *Artwork) galleryArtworkResponse {
		return handler.toGalleryResponse(a, lang)
	})
	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/gallery/artworks/{id}.

Response:
  - 200: Localized artwork
  - 404: ErrNotFound (drafts are invisible here)
*/
func (handler *Handler) GetGalleryArtwork(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	lang := i18n.Negotiate(request.Header.Get("Accept-Language"))

	a, err := handler.service.GetArtwork(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	// Drafts are indistinguishable from missing artworks for visitors.
	if a.IsDraft {
		respond.Error(writer, request, apperr.NotFound("Artwork"))
		return
	}
	respond.OK(writer, handler.toGalleryResponse(a, lang))
}
