// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package service

import (
	"context"
	"fmt"

	"github.com/teamgrid/richinfo-server/internal/config"
	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/internal/store"
	"github.com/teamgrid/richinfo-server/models"
)

// richInfoService implements RichInfoService. Writes are validated,
// normalized, and stored as a whole-set replacement; reads pass through the
// access gate before touching storage.
type richInfoService struct {
	richInfoRepository store.RichInfoRepository
	accessGate         AccessGateService

	// maxSize is the size budget in bytes for one user's retained field
	// set: the sum of name and value byte lengths over every field kept
	// after normalization.
	maxSize int

	logger *logger.Logger
}

func NewRichInfoService(richInfoRepository store.RichInfoRepository, accessGate AccessGateService, cfg config.App, logger *logger.Logger) RichInfoService {
	maxSize := cfg.RichInfoMaxSize
	if maxSize <= 0 {
		maxSize = config.DefaultRichInfoMaxSize
	}

	return &richInfoService{
		richInfoRepository: richInfoRepository,
		accessGate:         accessGate,
		maxSize:            maxSize,
		logger:             logger,
	}
}

// SetRichInfo replaces the user's whole field set with the submitted one.
//
// The submission is checked and normalized in a fixed order:
//  1. Duplicate names anywhere in the submission reject the whole write
//     with ErrDuplicateField, even when the duplicates carry empty values.
//  2. Fields with an empty value are dropped. Submitting only empty-valued
//     fields therefore clears the stored set.
//  3. The retained fields' total size must fit the configured budget,
//     otherwise ErrRichInfoTooLarge is returned and nothing is stored.
//  4. The user must belong to at least one team; a teamless user gets
//     ErrRichInfoAccessDenied.
//
// On success the retained fields replace the stored set atomically, in
// submission order. A failed write leaves the previously stored set intact.
func (s *richInfoService) SetRichInfo(ctx context.Context, userID int64, fields []models.RichField) error {
	log := logger.FromContext(ctx)

	retained, err := s.normalizeFields(fields)
	if err != nil {
		log.Err(err).Int64("userID", userID).Int("fields", len(fields)).Msg("rich info rejected")
		return err
	}

	if err := s.accessGate.Authorize(ctx, userID, userID); err != nil {
		return err
	}

	if err := s.richInfoRepository.ReplaceRichInfo(ctx, userID, retained); err != nil {
		log.Err(err).Int64("userID", userID).Msg("rich info replacement ended with error")
		return fmt.Errorf("rich info replacement ended with error: %w", err)
	}

	return nil
}

// GetRichInfo returns targetID's stored field set after authorizing the
// caller. A target that was never written to yields an empty field list,
// not an error.
func (s *richInfoService) GetRichInfo(ctx context.Context, callerID, targetID int64) (models.RichInfo, error) {
	log := logger.FromContext(ctx)

	if err := s.accessGate.Authorize(ctx, callerID, targetID); err != nil {
		return models.RichInfo{}, err
	}

	fields, err := s.richInfoRepository.GetRichInfo(ctx, targetID)
	if err != nil {
		log.Err(err).Int64("targetID", targetID).Msg("rich info lookup ended with error")
		return models.RichInfo{}, fmt.Errorf("rich info lookup ended with error: %w", err)
	}

	return models.RichInfo{UserID: targetID, Fields: fields}, nil
}

// normalizeFields applies the duplicate check, empty-value drop, and size
// budget, in that order, returning the fields that are to be stored.
func (s *richInfoService) normalizeFields(fields []models.RichField) ([]models.RichField, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = struct{}{}
	}

	retained := make([]models.RichField, 0, len(fields))
	size := 0
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		retained = append(retained, f)
		size += f.Size()
	}

	if size > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes over a budget of %d", ErrRichInfoTooLarge, size, s.maxSize)
	}

	return retained, nil
}
