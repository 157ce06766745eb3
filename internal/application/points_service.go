package application

import (
	"context"
	"fmt"

	"github.com/example/game-scheduler/internal/persistence"
	"github.com/example/game-scheduler/internal/points"
)

// PointsStore captures the persistence slots needed by the points service.
type PointsStore interface {
	LoadPoints(ctx context.Context) (persistence.UserPoints, error)
	LoadBonusPenaltyRecords(ctx context.Context) ([]persistence.BonusPenaltyRecord, error)
}

// PointsService exposes read access to the ledger state. Mutations happen
// through schedule outcome events, never directly.
type PointsService struct {
	store PointsStore
}

// NewPointsService wires dependencies for ledger reads.
func NewPointsService(store PointsStore) *PointsService {
	return &PointsService{store: store}
}

// Points returns the current points/streak record.
func (s *PointsService) Points(ctx context.Context) (persistence.UserPoints, error) {
	if s == nil || s.store == nil {
		return persistence.UserPoints{}, fmt.Errorf("PointsService is not configured")
	}
	return s.store.LoadPoints(ctx)
}

// Records returns the bonus/penalty log, newest first.
func (s *PointsService) Records(ctx context.Context) ([]persistence.BonusPenaltyRecord, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("PointsService is not configured")
	}
	return s.store.LoadBonusPenaltyRecords(ctx)
}

// Motivation derives the 0-100 gauge from the current ledger state.
func (s *PointsService) Motivation(ctx context.Context) (points.Motivation, error) {
	if s == nil || s.store == nil {
		return points.Motivation{}, fmt.Errorf("PointsService is not configured")
	}
	stored, err := s.store.LoadPoints(ctx)
	if err != nil {
		return points.Motivation{}, err
	}
	return points.MotivationFor(toLedgerState(stored)), nil
}
