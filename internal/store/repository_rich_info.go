// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package store

import (
	"context"
	"fmt"

	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/models"
)

// richInfoRepository is the PostgreSQL-backed implementation of
// [RichInfoRepository]. Fields live in the "rich_info_fields" table, one
// row per field, keyed by owner and carrying an explicit position column
// so reads reproduce the submission order.
type richInfoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRichInfoRepository constructs a [RichInfoRepository] backed by the
// provided database connection and logger.
func NewRichInfoRepository(db *DB, logger *logger.Logger) RichInfoRepository {
	logger.Debug().Msg("creating rich info repository")
	return &richInfoRepository{
		db:     db,
		logger: logger,
	}
}

// GetRichInfo retrieves the user's stored field set ordered by position.
//
// A user who never wrote rich info yields an empty, non-nil slice: absence
// and emptiness are indistinguishable by design.
func (r *richInfoRepository) GetRichInfo(ctx context.Context, userID int64) ([]models.RichField, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRichInfoQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*richInfoRepository.GetRichInfo").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*richInfoRepository.GetRichInfo").
			Int64("user_id", userID).
			Msg("failed to execute query for getting rich info")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	fields := make([]models.RichField, 0, 8)

	for rows.Next() {
		var field models.RichField

		if scanErr := rows.Scan(&field.Name, &field.Value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*richInfoRepository.GetRichInfo").
				Int64("user_id", userID).
				Msg("failed to scan rich field row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		fields = append(fields, field)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*richInfoRepository.GetRichInfo").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return fields, nil
}

// ReplaceRichInfo atomically replaces the user's whole field set inside one
// transaction: every stored row is deleted, then the new rows are inserted
// in their submitted order. Concurrent writers to the same user serialize
// at the database, giving last-writer-wins without partial states.
func (r *richInfoRepository) ReplaceRichInfo(ctx context.Context, userID int64, fields []models.RichField) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*richInfoRepository.ReplaceRichInfo").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	deleteQuery, deleteArgs, err := buildDeleteRichInfoQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*richInfoRepository.ReplaceRichInfo").Msg("failed to create delete query")
		return err
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "*richInfoRepository.ReplaceRichInfo").
			Int64("user_id", userID).
			Str("classification", r.db.errorClassificator.Classify(err).String()).
			Msg("failed to delete previous rich info")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(fields) > 0 {
		insertQuery, insertArgs, buildErr := buildInsertRichInfoQuery(userID, fields)
		if buildErr != nil {
			log.Err(buildErr).Str("func", "*richInfoRepository.ReplaceRichInfo").Msg("failed to create insert query")
			return buildErr
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "*richInfoRepository.ReplaceRichInfo").
				Int64("user_id", userID).
				Int("fields", len(fields)).
				Str("classification", r.db.errorClassificator.Classify(err).String()).
				Msg("failed to insert new rich info")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*richInfoRepository.ReplaceRichInfo").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
