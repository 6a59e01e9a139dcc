// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkwell/internal/platform/request"
	"github.com/taibuivan/inkwell/internal/platform/respond"
	"github.com/taibuivan/inkwell/pkg/convert"
	"github.com/taibuivan/inkwell/pkg/pagination"
	"github.com/taibuivan/inkwell/pkg/pointer"
)

// Handler exposes the catalogue over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// VisitResult is the body returned by POST /front/book/visit.
type VisitResult struct {
	Counted bool `json:"counted"`
}

// RegisterRoutes mounts the catalogue endpoints on the /api router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/books", handler.listCategories)
	router.Post("/books", handler.search)
	router.Get("/front/book/category/list", handler.listCategories)
	router.Get("/front/search/books", handler.searchByQuery)

	router.Get("/front/home/books", handler.listHomeBooks)
	router.Get("/front/book/{id}", handler.getBook)
	router.Post("/front/book/visit", handler.addVisit)
	router.Get("/front/book/rec_list", handler.listRecommended)
	router.Get("/front/book/visit_rank", handler.rank(RankVisit))
	router.Get("/front/book/newest_rank", handler.rank(RankNewest))
	router.Get("/front/book/update_rank", handler.rank(RankUpdate))

	// Authors
	router.Group(func(authorRoute chi.Router) {
		authorRoute.Use(middleware.RequireAuth)

		authorRoute.Get("/author/books", handler.listAuthorBooks)
		authorRoute.Post("/author/book", handler.publish)
		authorRoute.Put("/author/book/{id}", handler.update)
		authorRoute.Delete("/author/book/{id}", handler.delete)
	})
}

// # Public Endpoints

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	workDirection := convert.ToIntD(request.URL.Query().Get("workDirection"), DirectionMale)

	categories, err := handler.service.Categories(request.Context(), workDirection)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	var input SearchRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.Search(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

// searchByQuery is the query-string form of search used by the catalogue page.
func (handler *Handler) searchByQuery(writer http.ResponseWriter, request *http.Request) {
	input, err := searchFromQuery(request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.Search(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) listHomeBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.HomeBooks(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.Detail(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

func (handler *Handler) addVisit(writer http.ResponseWriter, request *http.Request) {
	var input VisitRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	counted, err := handler.service.AddVisit(request.Context(), input.BookID, middleware.RealIP(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, VisitResult{Counted: counted})
}

func (handler *Handler) listRecommended(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.Int64Query(request, "bookId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, err := handler.service.Recommend(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) rank(rank RankType) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		workDirection := convert.ToIntD(request.URL.Query().Get("workDirection"), DirectionMale)

		books, err := handler.service.Rank(request.Context(), rank, workDirection)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, books)
	}
}

// # Author Endpoints

func (handler *Handler) listAuthorBooks(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.AuthorBooks(request.Context(), userID, pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) publish(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var draft Draft
	if err := requestutil.DecodeJSON(writer, request, &draft); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.Publish(request.Context(), userID, draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, book)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
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

	book, err := handler.service.Update(request.Context(), userID, bookID, draft)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.service.Delete(request.Context(), userID, bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}


// # Query Filters

// searchFromQuery reads a [SearchRequest] from query parameters named like its
// JSON fields. Empty parameters are absent filters.
func searchFromQuery(query url.Values) (SearchRequest, error) {
	parser := &queryParser{values: query}

	input := SearchRequest{
		Filter: Filter{
			WorkDirection: parser.optInt("workDirection"),
			CategoryID:    parser.optInt64("categoryId"),
			BookStatus:    parser.optInt("bookStatus"),
			WordCountMin:  parser.optInt("wordCountMin"),
			WordCountMax:  parser.optInt("wordCountMax"),
			Keyword:       query.Get("keyword"),
			UpdatedSince:  parser.optTime("updateTimeMin"),
			Sort:          query.Get("sort"),
		},
		PageNum:  convert.ToIntD(query.Get("pageNum"), 0),
		PageSize: convert.ToIntD(query.Get("pageSize"), 0),
	}

	if len(parser.errs) > 0 {
		return SearchRequest{}, apperr.ValidationError("Validation failed", parser.errs...)
	}
	return input, nil
}

type queryParser struct {
	values url.Values
	errs   []apperr.FieldError
}

func (parser *queryParser) optInt64(name string) *int64 {
	raw := parser.values.Get(name)
	if raw == "" {
		return nil
	}

	value, ok := convert.ToInt64(raw)
	if !ok {
		parser.errs = append(parser.errs, apperr.FieldError{Field: name, Message: "Must be a number"})
		return nil
	}
	return pointer.To(value)
}

func (parser *queryParser) optInt(name string) *int {
	value := parser.optInt64(name)
	if value == nil {
		return nil
	}
	return pointer.To(int(*value))
}

// optTime accepts RFC 3339 timestamps and plain dates.
func (parser *queryParser) optTime(name string) *time.Time {
	raw := parser.values.Get(name)
	if raw == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if value, err := time.Parse(layout, raw); err == nil {
			return pointer.To(value)
		}
	}
	parser.errs = append(parser.errs, apperr.FieldError{Field: name, Message: "Must be a date"})
	return nil
}
