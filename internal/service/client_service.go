package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andy/tradebook/internal/domain"
	"github.com/andy/tradebook/internal/repository"
)

var (
	ErrIndexOutOfRange = errors.New("the client index provided is invalid")
	ErrDuplicateClient = errors.New("this client already exists")
)

// ClientPatch holds the fields an edit changes; nil means keep
type ClientPatch struct {
	Name    *domain.Name
	Phone   *domain.Phone
	Email   *domain.Email
	Address *domain.Address
	Tags    []domain.Tag // nil keeps, empty clears
}

// IsEmpty returns true if the patch changes nothing
func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Email == nil && p.Address == nil && p.Tags == nil
}

// ClientService manages clients addressed by their position in the list
type ClientService interface {
	// Add stores a new client, rejecting a name already in use
	Add(ctx context.Context, client *domain.Client) error

	// List returns clients in display order
	List(ctx context.Context) ([]*domain.Client, error)

	// At returns the client shown at idx
	At(ctx context.Context, idx domain.Index) (*domain.Client, error)

	// Edit applies patch to the client at idx
	Edit(ctx context.Context, idx domain.Index, patch ClientPatch) (*domain.Client, error)

	// Delete removes the client at idx along with its transactions
	Delete(ctx context.Context, idx domain.Index) (*domain.Client, error)

	// Remark sets or, with nil, clears the remark of the client at idx
	Remark(ctx context.Context, idx domain.Index, remark *domain.Text) (*domain.Client, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
	txRepo     repository.TransactionRepository
	log        *slog.Logger
}

// NewClientService creates a new client service
func NewClientService(
	clientRepo repository.ClientRepository,
	txRepo repository.TransactionRepository,
	log *slog.Logger,
) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		txRepo:     txRepo,
		log:        log,
	}
}

// clientAt resolves a zero-based index against the displayed list
func clientAt(ctx context.Context, repo repository.ClientRepository, idx domain.Index) (*domain.Client, error) {
	clients, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if idx.ZeroBased() >= len(clients) {
		return nil, ErrIndexOutOfRange
	}
	return clients[idx.ZeroBased()], nil
}

func (s *clientService) Add(ctx context.Context, client *domain.Client) error {
	if err := s.ensureUnique(ctx, client); err != nil {
		return err
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return err
	}
	s.log.Info("client added", "id", client.ID, "name", client.Name.String())
	return nil
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) At(ctx context.Context, idx domain.Index) (*domain.Client, error) {
	return clientAt(ctx, s.clientRepo, idx)
}

func (s *clientService) Edit(ctx context.Context, idx domain.Index, patch ClientPatch) (*domain.Client, error) {
	if patch.IsEmpty() {
		return nil, errors.New("at least one field to edit must be provided")
	}

	client, err := clientAt(ctx, s.clientRepo, idx)
	if err != nil {
		return nil, err
	}

	edited := *client
	if patch.Name != nil {
		edited.Name = *patch.Name
	}
	if patch.Phone != nil {
		edited.Phone = *patch.Phone
	}
	if patch.Email != nil {
		edited.Email = *patch.Email
	}
	if patch.Address != nil {
		edited.Address = *patch.Address
	}
	if patch.Tags != nil {
		edited.Tags = domain.UniqueTags(patch.Tags)
	}
	edited.UpdatedAt = time.Now()

	if !client.IsSameClient(&edited) {
		if err := s.ensureUnique(ctx, &edited); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Update(ctx, &edited); err != nil {
		return nil, err
	}
	s.log.Info("client edited", "id", edited.ID, "name", edited.Name.String())
	return &edited, nil
}

func (s *clientService) Delete(ctx context.Context, idx domain.Index) (*domain.Client, error) {
	client, err := clientAt(ctx, s.clientRepo, idx)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.DeleteByClient(ctx, client.ID); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Delete(ctx, client.ID); err != nil {
		return nil, err
	}
	s.log.Info("client deleted", "id", client.ID, "name", client.Name.String())
	return client, nil
}

func (s *clientService) Remark(ctx context.Context, idx domain.Index, remark *domain.Text) (*domain.Client, error) {
	client, err := clientAt(ctx, s.clientRepo, idx)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.SetRemark(ctx, client.ID, remark); err != nil {
		return nil, err
	}
	client.SetRemark(remark)
	s.log.Debug("client remark set", "id", client.ID, "cleared", remark == nil)
	return client, nil
}

func (s *clientService) ensureUnique(ctx context.Context, client *domain.Client) error {
	existing, err := s.clientRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for duplicates: %w", err)
	}
	for _, other := range existing {
		if other.ID != client.ID && other.IsSameClient(client) {
			return ErrDuplicateClient
		}
	}
	return nil
}
