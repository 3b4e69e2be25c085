package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devkabir/moviq/internal/platform/database/schema"
	"github.com/devkabir/moviq/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// likeEscaper neutralizes LIKE wildcards in user-supplied patterns.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (repository *PostgresRepository) Upsert(context context.Context, item *Item) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = now()
	`,
		schema.CatalogItem.Table,
		schema.CatalogItem.ContentID, schema.CatalogItem.Title, schema.CatalogItem.NormalizedKey,
		schema.CatalogItem.Language, schema.CatalogItem.Year, schema.CatalogItem.PosterRef,
		schema.CatalogItem.ContentID,
		schema.CatalogItem.Title, schema.CatalogItem.Title,
		schema.CatalogItem.NormalizedKey, schema.CatalogItem.NormalizedKey,
		schema.CatalogItem.Language, schema.CatalogItem.Language,
		schema.CatalogItem.Year, schema.CatalogItem.Year,
		schema.CatalogItem.PosterRef, schema.CatalogItem.PosterRef,
		schema.CatalogItem.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query,
		item.ContentID, item.Title, item.NormalizedKey, item.Language, item.Year, item.PosterRef,
	)
	if err != nil {
		return dberr.Wrap(err, "upsert_item")
	}

	return nil
}

func (repository *PostgresRepository) GetByID(context context.Context, contentID int64) (*Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.CatalogItem.Columns(), ", "),
		schema.CatalogItem.Table, schema.CatalogItem.ContentID)

	item := &Item{}
	err := repository.db.QueryRow(context, query, contentID).Scan(
		&item.ContentID, &item.Title, &item.NormalizedKey, &item.Language, &item.Year,
		&item.PosterRef, &item.ViewCount, &item.LikeCount, &item.DislikeCount,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_item_by_id")
	}

	return item, nil
}

func (repository *PostgresRepository) GetByIDs(context context.Context, contentIDs []int64) ([]*Item, error) {
	if len(contentIDs) == 0 {
		return []*Item{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`,
		strings.Join(schema.CatalogItem.Columns(), ", "),
		schema.CatalogItem.Table, schema.CatalogItem.ContentID)

	rows, err := repository.db.Query(context, query, contentIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "get_items_by_ids")
	}
	defer rows.Close()

	items := make([]*Item, 0, len(contentIDs))
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(
			&item.ContentID, &item.Title, &item.NormalizedKey, &item.Language, &item.Year,
			&item.PosterRef, &item.ViewCount, &item.LikeCount, &item.DislikeCount,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_item")
		}
		items = append(items, item)
	}

	return items, nil
}

func (repository *PostgresRepository) SearchExact(context context.Context, normalizedKey, rawQuery string, limit int) ([]*Item, error) {
	// A single OR query yields each matching row once, covering the union of
	// the prefix and substring predicates without application-side dedup.
	// ContentID ordering keeps the result stable across identical catalog states.
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s LIKE $1 OR %s ILIKE $2
		ORDER BY %s ASC
		LIMIT $3
	`,
		strings.Join(schema.CatalogItem.Columns(), ", "),
		schema.CatalogItem.Table,
		schema.CatalogItem.NormalizedKey, schema.CatalogItem.Title,
		schema.CatalogItem.ContentID,
	)

	prefixPattern := likeEscaper.Replace(normalizedKey) + "%"
	containsPattern := "%" + likeEscaper.Replace(rawQuery) + "%"

	rows, err := repository.db.Query(context, query, prefixPattern, containsPattern, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "search_exact")
	}
	defer rows.Close()

	items := make([]*Item, 0, limit)
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(
			&item.ContentID, &item.Title, &item.NormalizedKey, &item.Language, &item.Year,
			&item.PosterRef, &item.ViewCount, &item.LikeCount, &item.DislikeCount,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_item")
		}
		items = append(items, item)
	}

	return items, nil
}

func (repository *PostgresRepository) DistinctKeys(context context.Context) ([]KeyRef, error) {
	// DISTINCT ON picks the lowest ContentID per key, making the fuzzy
	// stage's representative-item choice deterministic.
	query := fmt.Sprintf(`
		SELECT DISTINCT ON (%s) %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC
	`,
		schema.CatalogItem.NormalizedKey,
		schema.CatalogItem.NormalizedKey, schema.CatalogItem.ContentID,
		schema.CatalogItem.Table,
		schema.CatalogItem.NormalizedKey, schema.CatalogItem.ContentID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "distinct_keys")
	}
	defer rows.Close()

	keys := make([]KeyRef, 0)
	for rows.Next() {
		ref := KeyRef{}
		if err := rows.Scan(&ref.NormalizedKey, &ref.ContentID); err != nil {
			return nil, dberr.Wrap(err, "scan_key_ref")
		}
		keys = append(keys, ref)
	}

	return keys, nil
}

func (repository *PostgresRepository) Count(context context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.CatalogItem.Table)

	var total int64
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_items")
	}

	return total, nil
}

func (repository *PostgresRepository) TotalViews(context context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COALESCE(SUM(%s), 0) FROM %s`,
		schema.CatalogItem.ViewCount, schema.CatalogItem.Table)

	var total int64
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "total_views")
	}

	return total, nil
}
