package ledger

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) IncrementView(context context.Context, contentID int64) (int, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = %s + 1
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogItem.Table,
		schema.CatalogItem.ViewCount, schema.CatalogItem.ViewCount,
		schema.CatalogItem.ContentID,
		schema.CatalogItem.ViewCount,
	)

	var viewCount int
	if err := repository.db.QueryRow(context, query, contentID).Scan(&viewCount); err != nil {
		return 0, dberr.Wrap(err, "increment_view")
	}

	return viewCount, nil
}

func (repository *PostgresRepository) CastVote(context context.Context, contentID, userID int64, isLike bool) (VoteOutcome, VoteCounts, error) {
	// Single-statement check-then-act: the CTE inserts the voter-set row
	// only if absent, and the counter update sees exactly the rows that
	// insert produced. A duplicate vote inserts nothing, so both counters
	// get +0 and the EXISTS flag reports the rejection.
	query := fmt.Sprintf(`
		WITH vote AS (
			INSERT INTO %s (%s, %s, %s)
			VALUES ($1, $2, $3)
			ON CONFLICT (%s, %s) DO NOTHING
			RETURNING %s
		)
		UPDATE %s item SET
			%s = item.%s + (SELECT COUNT(*) FROM vote WHERE %s),
			%s = item.%s + (SELECT COUNT(*) FROM vote WHERE NOT %s)
		WHERE item.%s = $1
		RETURNING item.%s, item.%s, EXISTS(SELECT 1 FROM vote)
	`,
		schema.CatalogItemVote.Table,
		schema.CatalogItemVote.ContentID, schema.CatalogItemVote.UserID, schema.CatalogItemVote.IsLike,
		schema.CatalogItemVote.ContentID, schema.CatalogItemVote.UserID,
		schema.CatalogItemVote.IsLike,
		schema.CatalogItem.Table,
		schema.CatalogItem.LikeCount, schema.CatalogItem.LikeCount, schema.CatalogItemVote.IsLike,
		schema.CatalogItem.DislikeCount, schema.CatalogItem.DislikeCount, schema.CatalogItemVote.IsLike,
		schema.CatalogItem.ContentID,
		schema.CatalogItem.LikeCount, schema.CatalogItem.DislikeCount,
	)

	var counts VoteCounts
	var accepted bool

	err := repository.db.QueryRow(context, query, contentID, userID, isLike).
		Scan(&counts.LikeCount, &counts.DislikeCount, &accepted)
	if err != nil {
		return "", VoteCounts{}, dberr.Wrap(err, "cast_vote")
	}

	if !accepted {
		return VoteAlreadyCast, counts, nil
	}
	return VoteAccepted, counts, nil
}

func (repository *PostgresRepository) ToggleFavorite(context context.Context, userID, contentID int64) (FavoriteOutcome, error) {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return "", dberr.Wrap(err, "toggle_favorite_begin")
	}
	defer func() { _ = transaction.Rollback(context) }()

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO NOTHING
	`,
		schema.UsersFavorite.Table,
		schema.UsersFavorite.UserID, schema.UsersFavorite.ContentID,
		schema.UsersFavorite.UserID, schema.UsersFavorite.ContentID,
	)

	tag, err := transaction.Exec(context, insertQuery, userID, contentID)
	if err != nil {
		return "", dberr.Wrap(err, "toggle_favorite_insert")
	}

	outcome := FavoriteAdded
	if tag.RowsAffected() == 0 {
		// Already present: this toggle removes it.
		deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
			schema.UsersFavorite.Table,
			schema.UsersFavorite.UserID, schema.UsersFavorite.ContentID,
		)
		if _, err := transaction.Exec(context, deleteQuery, userID, contentID); err != nil {
			return "", dberr.Wrap(err, "toggle_favorite_delete")
		}
		outcome = FavoriteRemoved
	}

	if err := transaction.Commit(context); err != nil {
		return "", dberr.Wrap(err, "toggle_favorite_commit")
	}

	return outcome, nil
}
