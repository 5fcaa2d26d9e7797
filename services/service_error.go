package services

import (
	"context"
	"net/http"

	"order-management-service/logger"
	"order-management-service/repository"

	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func notFound(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: msg}
}

func conflict(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: msg}
}

// storageFailure logs err and hides it behind "Erro ao <op> <entity>".
func storageFailure(ctx context.Context, l *zap.Logger, op, entity string, err error) *ServiceError {
	msg := "Erro ao " + op + " " + entity
	logger.FromContext(ctx, l).Error(msg, zap.Error(err))
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: msg}
}

// lookupFailure maps a FindByID error to 404 or 500.
func lookupFailure(ctx context.Context, l *zap.Logger, err error, notFoundMsg, entity string) *ServiceError {
	if repository.IsNotFound(err) {
		return notFound(notFoundMsg)
	}
	return storageFailure(ctx, l, "buscar", entity, err)
}
