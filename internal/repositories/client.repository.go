package repositories

import (
	"context"
	"errors"

	"hrm/internal/apperrors"
	"hrm/internal/database"
	"hrm/internal/logger"
	. "hrm/internal/models"
	"hrm/internal/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Client, error)
	Create(ctx context.Context, client *Client) error
	GetAll(ctx context.Context) ([]*Client, error)
}

type clientRepository struct {
	db  database.DB
	log logger.Logger
}

func NewClient(db database.DB) ClientRepository {
	return &clientRepository{
		db:  db,
		log: logger.New("clientRepository"),
	}
}

func (r *clientRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	log := r.log.Function("GetByID")

	var client Client
	if err := r.getDB(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("client")
		}
		return nil, log.Err("failed to get client by id", err, "id", id)
	}

	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *Client) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(client).Error; err != nil {
		return log.Err("failed to create client", err, "client", client)
	}

	return nil
}

func (r *clientRepository) GetAll(ctx context.Context) ([]*Client, error) {
	log := r.log.Function("GetAll")

	var clients []*Client
	if err := r.getDB(ctx).Order("name ASC").Find(&clients).Error; err != nil {
		return nil, log.Err("failed to get all clients", err)
	}

	return clients, nil
}
