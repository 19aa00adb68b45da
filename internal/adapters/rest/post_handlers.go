package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/potenlab/the-potential-backend/internal/constants"
	"github.com/potenlab/the-potential-backend/internal/contextkeys"
	"github.com/potenlab/the-potential-backend/internal/contracts"
	"github.com/potenlab/the-potential-backend/internal/core/domain"
	"github.com/potenlab/the-potential-backend/internal/core/port"
	"github.com/potenlab/the-potential-backend/internal/core/port/usecases_port"
)

// PostHandler serves the community board.
type PostHandler struct {
	listUC   usecases_port.ListPostsUseCasePort
	getUC    usecases_port.GetPostUseCasePort
	createUC usecases_port.CreatePostUseCasePort
}

func NewPostHandler(listUC usecases_port.ListPostsUseCasePort,
	getUC usecases_port.GetPostUseCasePort,
	createUC usecases_port.CreatePostUseCasePort) *PostHandler {
	return &PostHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
	}
}

// ListPosts handles GET /api/v1/posts
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListPosts"})

	q := r.URL.Query()
	var filters domain.PostFilters
	if v := q.Get("category"); v != "" {
		filters.Category = &v
	}
	if v := q.Get("keyword"); v != "" {
		filters.Keyword = &v
	}

	limit, err := GetLimitOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	offset, err := GetOffsetOrDefault(r)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid offset")
		return
	}

	page, err := h.listUC.Execute(r.Context(), filters, limit, offset)
	if err != nil {
		logger.Error("List posts use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve posts")
		return
	}

	response := PaginatedPostsResponse{
		Data:    make([]PostResponse, len(page.Posts)),
		Total:   page.TotalCount,
		HasMore: page.HasMore,
	}
	for i := range page.Posts {
		response.Data[i] = toPostResponse(&page.Posts[i])
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetPost handles GET /api/v1/posts/{postID}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPost"})

	postIDStr := chi.URLParam(r, "postID")
	postID, err := uuid.Parse(postIDStr)
	if err != nil {
		logger.Warn("Invalid postID in URL", port.Fields{"provided_id": postIDStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid postID in URL")
		return
	}

	post, err := h.getUC.Execute(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Post not found")
			return
		}
		logger.Error("Get post use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve post")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPostResponse(post))
}

// CreatePost handles POST /api/v1/posts
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreatePost"})

	authorID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read request body for create post", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := contracts.ValidateRequest(constants.RequestPostCreate, constants.RequestPostCreateVersion, body); err != nil {
		logger.Warn("Create post payload failed contract validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Request body does not match the contract")
		return
	}

	var reqDTO CreatePostRequest
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		logger.Warn("Failed to decode request body for create post", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(reqDTO.Title) == "" || strings.TrimSpace(reqDTO.Content) == "" {
		WriteJSONError(w, http.StatusBadRequest, "title and content are required")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"author_id": authorID})
	handlerLogger.Info("Processing request to create post", nil)

	post, err := h.createUC.Execute(r.Context(), authorID, reqDTO.Category, reqDTO.Title, reqDTO.Content)
	if err != nil {
		handlerLogger.Error("Create post use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	handlerLogger.Info("Successfully created post", port.Fields{"post_id": post.ID})
	RespondWithJSON(w, http.StatusCreated, toPostResponse(post))
}
