// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for chapters.
type Handler struct {
	service *Service
}

// NewHandler constructs a new chapter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the reader and author chapter endpoints to the /api router.
// Under /author/book/chapters/{id} and POST /author/book/chapter/{id} the id is a
// book id; elsewhere under /author/book/chapter/{id} it is a chapter id.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Readers
	router.Get("/chapters", handler.list)
	router.Get("/front/book/last_chapter/about", handler.about)
	router.Get("/front/book/chapter/list", handler.catalog)
	router.Get("/front/book/content/{id}", handler.read)
	router.Get("/front/book/pre_chapter_id/{id}", handler.previous)
	router.Get("/front/book/next_chapter_id/{id}", handler.next)

	// Authors
	router.Group(func(authorRoute chi.Router) {
		authorRoute.Use(middleware.RequireAuth)

		authorRoute.Get("/author/book/chapters/{id}", handler.listOwn)
		authorRoute.Post("/author/book/chapter/{id}", handler.create)
		authorRoute.Get("/author/book/chapter/{id}", handler.get)
		authorRoute.Put("/author/book/chapter/{id}", handler.update)
		authorRoute.Delete("/author/book/chapter/{id}", handler.delete)
	})
}

// # Reader Endpoints

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.Int64Query(request, FieldBookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.List(request.Context(), bookID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) about(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.Int64Query(request, FieldBookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	about, err := handler.service.About(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, about)
}

func (handler *Handler) catalog(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.Int64Query(request, FieldBookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapters, err := handler.service.Catalog(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, chapters)
}

func (handler *Handler) read(writer http.ResponseWriter, request *http.Request) {
	chapterID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reading, err := handler.service.Read(request.Context(), chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reading)
}

func (handler *Handler) previous(writer http.ResponseWriter, request *http.Request) {
	chapterID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.Previous(request.Context(), chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, id)
}

func (handler *Handler) next(writer http.ResponseWriter, request *http.Request) {
	chapterID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.Next(request.Context(), chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, id)
}

// # Author Endpoints

func (handler *Handler) listOwn(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.AuthorChapters(request.Context(), userID, bookID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var draft Draft
	if err := requestutil.DecodeJSON(writer, request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.Create(request.Context(), userID, bookID, draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, chapter)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapterID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	edit, err := handler.service.Get(request.Context(), userID, chapterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, edit)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapterID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var draft Draft
	if err := requestutil.DecodeJSON(writer, request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapter, err := handler.service.Update(request.Context(), userID, chapterID, draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, chapter)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	chapterID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), userID, chapterID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
