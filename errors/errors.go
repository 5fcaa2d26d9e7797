package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"order-management-service/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error is an HTTP-facing error rendered as {Key: Message}. Key defaults to "error".
type Error struct {
	Code    int
	Key     string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) MarshalJSON() ([]byte, error) {
	key := e.Key
	if key == "" {
		key = "error"
	}
	return json.Marshal(map[string]string{key: e.Message})
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// NewMessage creates an Error rendered as {"message": message}, the body
// shape of the CRUD handlers.
func NewMessage(code int, message string, err error) *Error {
	return &Error{Code: code, Key: "message", Message: message, Err: err}
}

// Response bodies of the two fallback handlers.
const (
	MsgEndpointNotFound = "Endpoint não encontrado."
	MsgUnexpected       = "Ocorreu algum erro."
)

var (
	ErrEndpointNotFound = New(http.StatusNotFound, MsgEndpointNotFound, nil)
	ErrUnexpected       = New(http.StatusBadRequest, MsgUnexpected, nil)
)

// NoRoute serves files from staticDir when the path names one, and answers 404 otherwise.
func NoRoute(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if staticDir != "" && c.Request.Method == http.MethodGet {
			if file, ok := staticFile(staticDir, c.Request.URL.Path); ok {
				c.File(file)
				return
			}
		}
		c.JSON(ErrEndpointNotFound.Code, ErrEndpointNotFound)
	}
}

func staticFile(dir, urlPath string) (string, bool) {
	clean := filepath.Clean("/" + strings.TrimPrefix(urlPath, "/"))
	if clean == "/" {
		clean = "/index.html"
	}
	full := filepath.Join(dir, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	return full, true
}

// Recovery turns a panic inside a handler into the generic 400 response.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.FromContext(c, l).Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(ErrUnexpected.Code, ErrUnexpected)
	})
}

// ErrorMiddleware renders errors attached with c.Error when the handler wrote nothing.
// Typed errors without a cause were already logged where they were built.
func ErrorMiddleware(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		log := logger.FromContext(c, l)

		var appErr *Error
		if !stderrors.As(err, &appErr) {
			log.Error("unhandled request error", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.JSON(ErrUnexpected.Code, ErrUnexpected)
			return
		}
		if appErr.Err != nil {
			log.Error("request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		} else {
			log.Warn("request failed",
				zap.Int("status", appErr.Code),
				zap.String("message", appErr.Message),
				zap.String("path", c.Request.URL.Path),
			)
		}
		c.JSON(appErr.Code, appErr)
	}
}
