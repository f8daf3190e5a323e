package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andy/tradebook/internal/db"
	"github.com/andy/tradebook/internal/domain"
)

// ClientRepo is a SQLite implementation of ClientRepository
type ClientRepo struct {
	db *db.DB
}

// NewClientRepo creates a new ClientRepo
func NewClientRepo(database *db.DB) *ClientRepo {
	return &ClientRepo{db: database}
}

// clientRow holds a client as stored, before it is validated back into values
type clientRow struct {
	id                          int64
	name, phone, email, address string
	remark                      sql.NullString
	createdAt, updatedAt        string
}

const clientColumns = `id, name, phone, email, address, remark, created_at, updated_at`

func (r *clientRow) scanFrom(s interface{ Scan(...any) error }) error {
	return s.Scan(&r.id, &r.name, &r.phone, &r.email, &r.address, &r.remark, &r.createdAt, &r.updatedAt)
}

// toClient rebuilds the client through the domain constructors so a row
// edited outside the app cannot produce an invalid value
func (r *clientRow) toClient(tagNames []string) (*domain.Client, error) {
	name, err := domain.NewName(r.name)
	if err != nil {
		return nil, fmt.Errorf("client %d name: %w", r.id, err)
	}
	phone, err := domain.NewPhone(r.phone)
	if err != nil {
		return nil, fmt.Errorf("client %d phone: %w", r.id, err)
	}
	email, err := domain.NewEmail(r.email)
	if err != nil {
		return nil, fmt.Errorf("client %d email: %w", r.id, err)
	}
	address, err := domain.NewAddress(r.address)
	if err != nil {
		return nil, fmt.Errorf("client %d address: %w", r.id, err)
	}

	tags := make([]domain.Tag, 0, len(tagNames))
	for _, tn := range tagNames {
		tag, err := domain.NewTag(tn)
		if err != nil {
			return nil, fmt.Errorf("client %d tag: %w", r.id, err)
		}
		tags = append(tags, tag)
	}

	client := &domain.Client{
		ID:      r.id,
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    tags,
	}

	if r.remark.Valid {
		remark, err := domain.NewText(r.remark.String)
		if err != nil {
			return nil, fmt.Errorf("client %d remark: %w", r.id, err)
		}
		client.Remark = &remark
	}

	if client.CreatedAt, err = parseTime(r.createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if client.UpdatedAt, err = parseTime(r.updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return client, nil
}

func remarkValue(remark *domain.Text) sql.NullString {
	if remark == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: remark.String(), Valid: true}
}

// Create inserts a new client and its tags
func (r *ClientRepo) Create(ctx context.Context, client *domain.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("invalid client: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO clients (name, phone, email, address, remark, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		client.Name.String(),
		client.Phone.String(),
		client.Email.String(),
		client.Address.String(),
		remarkValue(client.Remark),
		client.CreatedAt.Format(timeLayout),
		client.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get client ID: %w", err)
	}

	if err := writeTags(ctx, tx, id, client.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit client: %w", err)
	}

	client.ID = id
	return nil
}

// GetByID retrieves a client by ID
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var row clientRow
	err := row.scanFrom(r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	tags, err := r.loadTags(ctx, `WHERE client_id = ?`, id)
	if err != nil {
		return nil, err
	}

	return row.toClient(tags[id])
}

// List retrieves all clients in the order they were added
func (r *ClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	// Drain rows before the tag query; the pool holds a single connection
	var stored []clientRow
	for rows.Next() {
		var row clientRow
		if err := row.scanFrom(rows); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		stored = append(stored, row)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}
	rows.Close()

	tags, err := r.loadTags(ctx, "")
	if err != nil {
		return nil, err
	}

	clients := make([]*domain.Client, 0, len(stored))
	for i := range stored {
		client, err := stored[i].toClient(tags[stored[i].id])
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, nil
}

// Update replaces a client's fields and tags
func (r *ClientRepo) Update(ctx context.Context, client *domain.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("invalid client: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE clients
		SET name = ?, phone = ?, email = ?, address = ?, remark = ?, updated_at = ?
		WHERE id = ?
	`,
		client.Name.String(),
		client.Phone.String(),
		client.Email.String(),
		client.Address.String(),
		remarkValue(client.Remark),
		client.UpdatedAt.Format(timeLayout),
		client.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if err := expectOneRow(result, "client"); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM client_tags WHERE client_id = ?`, client.ID); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}
	if err := writeTags(ctx, tx, client.ID, client.Tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit client: %w", err)
	}
	return nil
}

// SetRemark sets or clears (nil) a client's remark
func (r *ClientRepo) SetRemark(ctx context.Context, id int64, remark *domain.Text) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET remark = ?, updated_at = ?
		WHERE id = ?
	`, remarkValue(remark), formatTime(), id)
	if err != nil {
		return fmt.Errorf("failed to set remark: %w", err)
	}
	return expectOneRow(result, "client")
}

// Delete removes a client; tags and transactions cascade
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return expectOneRow(result, "client")
}

// loadTags returns tag names keyed by client ID, optionally filtered by where
func (r *ClientRepo) loadTags(ctx context.Context, where string, args ...any) (map[int64][]string, error) {
	query := `SELECT client_id, tag FROM client_tags ` + where + ` ORDER BY client_id, position`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[int64][]string)
	for rows.Next() {
		var id int64
		var tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags[id] = append(tags[id], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}
	return tags, nil
}

func writeTags(ctx context.Context, tx *sql.Tx, clientID int64, tags []domain.Tag) error {
	for i, tag := range tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO client_tags (client_id, position, tag) VALUES (?, ?, ?)`,
			clientID, i, tag.Name(),
		); err != nil {
			return fmt.Errorf("failed to save tag %s: %w", tag.Name(), err)
		}
	}
	return nil
}
