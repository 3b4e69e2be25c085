package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devkabir/moviq/internal/catalog"
	"github.com/devkabir/moviq/internal/platform/apperr"
	"github.com/devkabir/moviq/internal/platform/database/schema"
	"github.com/devkabir/moviq/internal/platform/dberr"
	"github.com/devkabir/moviq/internal/platform/identity"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Touch(context context.Context, sender identity.Sender, defaultLanguage string) error {
	// COALESCE keeps the previously known name when the transport omits it
	// on a later interaction.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%s) DO UPDATE SET
			%s = COALESCE(EXCLUDED.%s, profile.%s),
			%s = COALESCE(EXCLUDED.%s, profile.%s),
			%s = now()
	`,
		schema.UsersProfile.Table,
		schema.UsersProfile.UserID, schema.UsersProfile.FirstName,
		schema.UsersProfile.Username, schema.UsersProfile.LanguagePref,
		schema.UsersProfile.UserID,
		schema.UsersProfile.FirstName, schema.UsersProfile.FirstName, schema.UsersProfile.FirstName,
		schema.UsersProfile.Username, schema.UsersProfile.Username, schema.UsersProfile.Username,
		schema.UsersProfile.LastActiveAt,
	)

	_, err := repository.db.Exec(context, query,
		sender.ID, nullIfEmpty(sender.FirstName), nullIfEmpty(sender.Username), defaultLanguage,
	)
	if err != nil {
		return dberr.Wrap(err, "touch_profile")
	}

	return nil
}

func (repository *PostgresRepository) SetLanguage(context context.Context, userID int64, language string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = now() WHERE %s = $2`,
		schema.UsersProfile.Table,
		schema.UsersProfile.LanguagePref, schema.UsersProfile.LastActiveAt,
		schema.UsersProfile.UserID,
	)

	tag, err := repository.db.Exec(context, query, language, userID)
	if err != nil {
		return dberr.Wrap(err, "set_language")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Profile")
	}

	return nil
}

func (repository *PostgresRepository) GetByID(context context.Context, userID int64) (*Profile, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.UsersProfile.UserID, schema.UsersProfile.FirstName, schema.UsersProfile.Username,
		schema.UsersProfile.LanguagePref, schema.UsersProfile.JoinedAt, schema.UsersProfile.LastActiveAt,
		schema.UsersProfile.Table, schema.UsersProfile.UserID,
	)

	record := &Profile{}
	err := repository.db.QueryRow(context, query, userID).Scan(
		&record.UserID, &record.FirstName, &record.Username,
		&record.LanguagePref, &record.JoinedAt, &record.LastActiveAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_profile")
	}

	return record, nil
}

func (repository *PostgresRepository) ListFavorites(context context.Context, userID int64, limit, offset int) ([]*catalog.Item, int, error) {
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		schema.UsersFavorite.Table, schema.UsersFavorite.UserID)

	var total int
	if err := repository.db.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_favorites")
	}

	itemColumns := make([]string, 0, len(schema.CatalogItem.Columns()))
	for _, column := range schema.CatalogItem.Columns() {
		itemColumns = append(itemColumns, "item."+column)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s favorite
		JOIN %s item ON item.%s = favorite.%s
		WHERE favorite.%s = $1
		ORDER BY favorite.%s DESC, favorite.%s DESC
		LIMIT $2 OFFSET $3
	`,
		strings.Join(itemColumns, ", "),
		schema.UsersFavorite.Table,
		schema.CatalogItem.Table, schema.CatalogItem.ContentID, schema.UsersFavorite.ContentID,
		schema.UsersFavorite.UserID,
		schema.UsersFavorite.CreatedAt, schema.UsersFavorite.ContentID,
	)

	rows, err := repository.db.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_favorites")
	}
	defer rows.Close()

	items := make([]*catalog.Item, 0, limit)
	for rows.Next() {
		item := &catalog.Item{}
		if err := rows.Scan(
			&item.ContentID, &item.Title, &item.NormalizedKey, &item.Language, &item.Year,
			&item.PosterRef, &item.ViewCount, &item.LikeCount, &item.DislikeCount,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_favorite_item")
		}
		items = append(items, item)
	}

	return items, total, nil
}

func (repository *PostgresRepository) Count(context context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.UsersProfile.Table)

	var total int64
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_profiles")
	}

	return total, nil
}

// nullIfEmpty maps the transport's empty-string sentinel to SQL NULL.
func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
