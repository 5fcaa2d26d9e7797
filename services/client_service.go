package services

import (
	"context"

	"order-management-service/models"
	"order-management-service/repository"

	"go.uber.org/zap"
)

type ClientService interface {
	ListClients(ctx context.Context) ([]models.Client, *ServiceError)
	GetClient(ctx context.Context, id uint) (*models.Client, *ServiceError)
	CreateClient(ctx context.Context, req *models.ClientRequest) (*models.Client, *ServiceError)
	UpdateClient(ctx context.Context, id uint, req *models.ClientRequest) (*models.Client, *ServiceError)
	DeleteClient(ctx context.Context, id uint) *ServiceError
}

type clientServiceImpl struct {
	repo     repository.ClientRepository
	notifier *EventNotifier
	logger   *zap.Logger
}

func NewClientService(repo repository.ClientRepository, notifier *EventNotifier, logger *zap.Logger) ClientService {
	return &clientServiceImpl{repo: repo, notifier: notifier, logger: logger}
}

func (s *clientServiceImpl) ListClients(ctx context.Context) ([]models.Client, *ServiceError) {
	clients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "listar", "clientes", err)
	}
	return clients, nil
}

func (s *clientServiceImpl) GetClient(ctx context.Context, id uint) (*models.Client, *ServiceError) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(ctx, s.logger, err, MsgClientNotFound, EntityClient)
	}
	return client, nil
}

// CreateClient rejects a CPF that is already registered. The unique index
// covers the window between the lookup and the insert.
func (s *clientServiceImpl) CreateClient(ctx context.Context, req *models.ClientRequest) (*models.Client, *ServiceError) {
	if _, err := s.repo.FindByCPF(ctx, req.CPF); err == nil {
		return nil, conflict(MsgClientCPFTaken)
	} else if !repository.IsNotFound(err) {
		return nil, storageFailure(ctx, s.logger, "incluir", EntityClient, err)
	}

	client := &models.Client{}
	req.Apply(client)
	if err := s.repo.Create(ctx, client); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, conflict(MsgClientCPFTaken)
		}
		return nil, storageFailure(ctx, s.logger, "incluir", EntityClient, err)
	}

	s.logger.Info("Client created", zap.Uint("id", client.ID))
	s.notifier.Notify(ctx, models.EventCreated, EntityClient, client.ID)
	return client, nil
}

func (s *clientServiceImpl) UpdateClient(ctx context.Context, id uint, req *models.ClientRequest) (*models.Client, *ServiceError) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(ctx, s.logger, err, MsgClientNotFound, EntityClient)
	}

	if other, err := s.repo.FindByCPF(ctx, req.CPF); err == nil && other.ID != id {
		return nil, conflict(MsgClientCPFInUse)
	} else if err != nil && !repository.IsNotFound(err) {
		return nil, storageFailure(ctx, s.logger, "atualizar", EntityClient, err)
	}

	req.Apply(client)
	if err := s.repo.Update(ctx, client); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, conflict(MsgClientCPFInUse)
		}
		return nil, storageFailure(ctx, s.logger, "atualizar", EntityClient, err)
	}

	s.notifier.Notify(ctx, models.EventUpdated, EntityClient, client.ID)
	return client, nil
}

func (s *clientServiceImpl) DeleteClient(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case repository.IsNotFound(err):
			return notFound(MsgClientNotFound)
		case repository.IsForeignKeyViolation(err):
			return conflict(MsgClientHasOrders)
		}
		return storageFailure(ctx, s.logger, "excluir", EntityClient, err)
	}

	s.logger.Info("Client deleted", zap.Uint("id", id))
	s.notifier.Notify(ctx, models.EventDeleted, EntityClient, id)
	return nil
}
