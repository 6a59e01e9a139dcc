// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/pkg/pagination"
)

// Handler exposes comments over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new comment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the comment endpoints to the /api router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/front/book/comment/newest_list", handler.newest)
	router.Get("/front/book/comments", handler.list)

	router.Group(func(userRoute chi.Router) {
		userRoute.Use(middleware.RequireAuth)

		userRoute.Get("/front/user/comments", handler.listMine)
		userRoute.Post("/front/user/comment", handler.create)
		userRoute.Put("/front/user/comment/{id}", handler.update)
		userRoute.Delete("/front/user/comment/{id}", handler.delete)
	})
}

func (handler *Handler) newest(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.Int64Query(request, "bookId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	newest, err := handler.service.Newest(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, newest)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.Int64Query(request, "bookId")
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

func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.ListByUser(request.Context(), userID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var draft Draft
	if err := requestutil.DecodeJSON(writer, request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.Create(request.Context(), claims, draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, comment)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	edit, err := decodeEdit(writer, request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.Update(request.Context(), userID, id, edit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, comment)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), claims, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// decodeEdit accepts the edit as JSON or as a URL-encoded form.
func decodeEdit(writer http.ResponseWriter, request *http.Request) (Edit, error) {
	var edit Edit
	if requestutil.IsForm(request) {
		if err := requestutil.ParseForm(writer, request); err != nil {
			return Edit{}, err
		}
		edit.CommentContent = request.PostForm.Get("commentContent")
		return edit, nil
	}

	if err := requestutil.DecodeJSON(writer, request, &edit); err != nil {
		return Edit{}, err
	}
	return edit, nil
}
