package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/vendorgate/authd/internal/auth/domain"
	"github.com/vendorgate/authd/internal/auth/store"
)

type clientsRepo struct {
	db *sql.DB
}

const clientColumns = `id, client_id, client_secret, user_id, username, vendor_id, grants, created_at, updated_at`

func scanClient(row *sql.Row) (domain.Client, error) {
	var c domain.Client
	var grants string
	err := row.Scan(
		&c.ID, &c.ClientID, &c.ClientSecret, &c.UserID, &c.Username,
		&c.VendorID, &grants, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	c.Grants = splitGrants(grants)
	return c, nil
}

// clientKeyWhere turns a dual-key into its WHERE clause. The resolution of
// which key an opaque admin-supplied string targets happens once, upstream;
// here a key is already unambiguous.
func clientKeyWhere(key store.ClientKey) (string, any) {
	if key.ID != "" {
		return "id = ?", key.ID
	}
	return "client_id = ?", key.ClientID
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, client_id, client_secret, user_id, username, vendor_id, grants, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ClientID, c.ClientSecret, c.UserID, c.Username, c.VendorID,
		joinGrants(c.Grants), now, now,
	)
	return mapConflict(err)
}

func (r *clientsRepo) GetClient(ctx context.Context, key store.ClientKey) (domain.Client, error) {
	where, arg := clientKeyWhere(key)
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE `+where, arg)
	return scanClient(row)
}

func (r *clientsRepo) GetClientByClientID(ctx context.Context, clientID string) (domain.Client, error) {
	return r.GetClient(ctx, store.ByClientID(clientID))
}

func (r *clientsRepo) ListClients(
	ctx context.Context,
	f store.ClientFilter,
	offset, limit int,
) ([]domain.Client, int, error) {
	var where []string
	var args []any

	if f.UserID != "" {
		where = append(where, "user_id = ?")
		args = append(args, f.UserID)
	}
	if f.Username != "" {
		where = append(where, "instr(lower(username), lower(?)) > 0")
		args = append(args, f.Username)
	}
	if f.VendorID != "" {
		where = append(where, "vendor_id = ?")
		args = append(args, f.VendorID)
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM clients`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients`+clause+` ORDER BY id LIMIT ? OFFSET ?`,
		append(args, limit, offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		var grants string
		if err := rows.Scan(
			&c.ID, &c.ClientID, &c.ClientSecret, &c.UserID, &c.Username,
			&c.VendorID, &grants, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		c.Grants = splitGrants(grants)
		clients = append(clients, c)
	}
	return clients, total, rows.Err()
}

func (r *clientsRepo) UpdateClient(
	ctx context.Context,
	key store.ClientKey,
	patch domain.ClientPatch,
) error {
	var sets []string
	var args []any

	if patch.ClientSecret != nil {
		sets = append(sets, "client_secret = ?")
		args = append(args, *patch.ClientSecret)
	}
	if patch.UserID != nil {
		sets = append(sets, "user_id = ?")
		args = append(args, *patch.UserID)
	}
	if patch.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, *patch.Username)
	}
	if patch.VendorID != nil {
		sets = append(sets, "vendor_id = ?")
		args = append(args, *patch.VendorID)
	}
	if patch.Grants != nil {
		sets = append(sets, "grants = ?")
		args = append(args, joinGrants(patch.Grants))
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())

	where, arg := clientKeyWhere(key)
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET `+strings.Join(sets, ", ")+` WHERE `+where,
		append(args, arg)...,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *clientsRepo) DeleteClient(ctx context.Context, key store.ClientKey) error {
	where, arg := clientKeyWhere(key)
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE `+where, arg)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
