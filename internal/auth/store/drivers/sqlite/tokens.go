package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/vendorgate/authd/internal/auth/domain"
	"github.com/vendorgate/authd/pkg/idx"
)

type tokensRepo struct {
	db *sql.DB
}

const tokenColumns = `access_token, access_token_expires_at, refresh_token, refresh_token_expires_at,
	client_username, client_id, user_id, user_username, final_auth_token, created_at`

func scanToken(row *sql.Row) (domain.Token, error) {
	var t domain.Token
	var refresh sql.NullString
	var refreshExp sql.NullTime
	err := row.Scan(
		&t.AccessToken, &t.AccessTokenExpiresAt, &refresh, &refreshExp,
		&t.Client.Username, &t.Client.ID, &t.User.UserID, &t.User.Username,
		&t.FinalAuthToken, &t.CreatedAt,
	)
	if err != nil {
		return domain.Token{}, mapNotFound(err)
	}
	t.RefreshToken = mapNullString(refresh)
	t.RefreshTokenExpiresAt = mapNullTime(refreshExp)
	return t, nil
}

func (r *tokensRepo) CreateToken(ctx context.Context, t domain.Token) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tokens (id, access_token, access_token_expires_at, refresh_token, refresh_token_expires_at,
			client_username, client_id, user_id, user_username, final_auth_token, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		idx.New().String(), t.AccessToken, t.AccessTokenExpiresAt,
		mapStringNull(t.RefreshToken), mapTimeNull(t.RefreshTokenExpiresAt),
		t.Client.Username, t.Client.ID, t.User.UserID, t.User.Username,
		t.FinalAuthToken, time.Now().UTC(),
	)
	return mapConflict(err)
}

func (r *tokensRepo) GetTokenByAccess(ctx context.Context, accessToken string) (domain.Token, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+tokenColumns+` FROM tokens WHERE access_token = ?`, accessToken)
	return scanToken(row)
}

func (r *tokensRepo) GetTokenByRefresh(ctx context.Context, refreshToken string) (domain.Token, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+tokenColumns+` FROM tokens WHERE refresh_token = ?`, refreshToken)
	return scanToken(row)
}

func (r *tokensRepo) DeleteTokenByRefresh(ctx context.Context, refreshToken string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tokens WHERE refresh_token = ?`, refreshToken)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
