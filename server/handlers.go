package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/twitterverse/core"
	"github.com/katalvlaran/twitterverse/filter"
	"github.com/katalvlaran/twitterverse/order"
	"github.com/katalvlaran/twitterverse/present"
	"github.com/katalvlaran/twitterverse/query"
	"github.com/katalvlaran/twitterverse/traverse"
)

// FilterRequest is one kind/argument pair of a QueryRequest.
type FilterRequest struct {
	Kind string `json:"kind" binding:"required,oneof=name-includes location-includes following follower"`
	Arg  string `json:"arg"`
}

// QueryRequest is the body of POST /v1/query. Filters apply in order; a
// kind given twice keeps its last argument.
type QueryRequest struct {
	Seed       string          `json:"seed" binding:"required"`
	Operations []string        `json:"operations" binding:"omitempty,dive,oneof=following followers"`
	Filters    []FilterRequest `json:"filters" binding:"omitempty,dive"`
	SortBy     string          `json:"sort_by" binding:"omitempty,oneof=username name popularity"`
	Format     string          `json:"format" binding:"omitempty,oneof=short long"`
}

// QueryResponse is the body of a successful POST /v1/query.
type QueryResponse struct {
	Results  []string `json:"results"`
	Rendered string   `json:"rendered"`
}

// UserResponse is the body of GET /v1/users/:handle.
type UserResponse struct {
	*core.User
	Followers int `json:"followers"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// toSpec converts a bound request into a query.Spec, applying defaults.
func (s *Server) toSpec(req QueryRequest) (query.Spec, error) {
	spec := query.Spec{Search: query.SearchSpec{Seed: req.Seed}, Filter: filter.NewSpec()}

	var err error
	if spec.Search.Operations, err = traverse.ParseOperations(req.Operations); err != nil {
		return spec, err
	}
	for _, f := range req.Filters {
		kind, err := filter.ParseKind(f.Kind)
		if err != nil {
			return spec, err
		}
		spec.Filter.Set(kind, f.Arg)
	}

	sortBy, format := req.SortBy, req.Format
	if sortBy == "" {
		sortBy = s.defaultSort
	}
	if format == "" {
		format = s.defaultFormat
	}
	if spec.Present.SortBy, err = order.ParseSortKey(sortBy); err != nil {
		return spec, err
	}
	if spec.Present.Format, err = present.ParseFormat(format); err != nil {
		return spec, err
	}

	return spec, nil
}

// handleQuery handles POST /v1/query.
func (s *Server) handleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.log.Warn("invalid request body", "request_id", c.GetString(headerRequestID), "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}
	spec, err := s.toSpec(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "MALFORMED_QUERY"})
		return
	}

	ctx := c.Request.Context()
	handles, err := s.engine.Answer(ctx, spec)
	if err != nil {
		s.fail(c, err)
		return
	}
	rendered, err := present.Render(s.engine.Database(), handles, spec.Present.Format)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, QueryResponse{Results: handles, Rendered: rendered})
}

// handleUser handles GET /v1/users/:handle.
func (s *Server) handleUser(c *gin.Context) {
	db := s.engine.Database()
	u, err := db.User(c.Param("handle"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, UserResponse{User: u, Followers: db.FollowerCount(u.Handle)})
}

// handleFollowers handles GET /v1/users/:handle/followers.
func (s *Server) handleFollowers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"followers": s.engine.Database().Followers(c.Param("handle"))})
}

// handleFollowing handles GET /v1/users/:handle/following.
func (s *Server) handleFollowing(c *gin.Context) {
	following, err := s.engine.Database().Following(c.Param("handle"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": following})
}

// fail maps an error to its HTTP status.
func (s *Server) fail(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, query.ErrMalformedSpec):
		status, code = http.StatusBadRequest, "MALFORMED_QUERY"
	case errors.Is(err, core.ErrUserNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, traverse.ErrFrontierTooLarge):
		status, code = http.StatusUnprocessableEntity, "FRONTIER_TOO_LARGE"
	}
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "request_id", c.GetString(headerRequestID), "error", err)
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}
