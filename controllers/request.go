package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	apperrors "order-management-service/errors"
	"order-management-service/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const msgInvalidPayload = "Dados inválidos"

func init() {
	// Report validation failures under the JSON field names clients send.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	}
}

// maxIDBits bounds ids to the positive range of a Postgres INTEGER column.
const maxIDBits = 31

// parseID reads the :id path parameter. Anything that is not a positive
// integer in the id column's range cannot name a row, so it is answered
// with notFoundMsg.
func parseID(ctx *gin.Context, notFoundMsg string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, maxIDBits)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return 0, false
	}
	return uint(id), true
}

// bindRequest binds and validates the JSON body, writing a 400 on failure.
func bindRequest(ctx *gin.Context, out any) bool {
	if err := ctx.ShouldBindJSON(out); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"message": msgInvalidPayload,
			"fields":  validationErrorsToMap(err),
		})
		return false
	}
	return true
}

// validationErrorsToMap names the offending field and rule. Decoder
// details never reach the client.
func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	var ve validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &ve):
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		out[typeErr.Field] = "type"
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		out["body"] = "json"
	case errors.Is(err, io.EOF):
		out["body"] = "required"
	default:
		out["body"] = "invalid"
	}
	return out
}

// abortWithServiceError answers client errors directly. Server errors are
// attached to the context and rendered by apperrors.ErrorMiddleware.
func abortWithServiceError(ctx *gin.Context, svcErr *services.ServiceError) {
	if svcErr.StatusCode >= http.StatusInternalServerError {
		_ = ctx.Error(apperrors.NewMessage(svcErr.StatusCode, svcErr.Message, nil))
		ctx.Abort()
		return
	}
	ctx.JSON(svcErr.StatusCode, gin.H{"message": svcErr.Message})
}
