package httperr

import (
	"net/http"

	"grocery-pool/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithUsecaseError maps a usecase error onto its HTTP status by kind.
// Unknown failures are reported as 500 without leaking the cause.
func AbortWithUsecaseError(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), gin.H{"kind": kind.Error()})
}

func StatusOf(kind error) int {
	switch kind {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrValidation, errs.ErrInactiveCart, errs.ErrInsufficientStock, errs.ErrInsufficientBalance:
		return http.StatusBadRequest
	case errs.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
