package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoundRecord is a finished round, stored with the seed its road was
// generated from so the road can be rebuilt later.
type RoundRecord struct {
	RoundID    string
	GameID     string
	Seed       int64
	RoadLength int
	Score      int
	MoveIndex  int
	Overshot   bool
	Ticks      int
	CreatedAt  time.Time
}

// ErrRoundNotFound is returned by RoundByID for an unknown round.
var ErrRoundNotFound = errors.New("storage: round not found")

// SaveRound stores a finished round. An empty RoundID is filled with a
// new UUID; the ID used is returned.
func (s *Store) SaveRound(r RoundRecord) (string, error) {
	return insertRound(s.db, r)
}

// RecordRound stores a finished round and its score in one transaction,
// so a score is never saved without a round to replay.
func (s *Store) RecordRound(r RoundRecord) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := insertScore(tx, r.GameID, r.Score); err != nil {
		return "", err
	}
	id, err := insertRound(tx, r)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return id, nil
}

func insertRound(db execer, r RoundRecord) (string, error) {
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	} else if _, err := uuid.Parse(r.RoundID); err != nil {
		return "", fmt.Errorf("storage: invalid round id %q: %w", r.RoundID, err)
	}

	_, err := db.Exec(
		`INSERT INTO rounds
		 (round_id, game_id, seed, road_length, score, move_index, overshot, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID, r.GameID, r.Seed, r.RoadLength, r.Score, r.MoveIndex, r.Overshot, r.Ticks,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return r.RoundID, nil
}

const roundColumns = `round_id, game_id, seed, road_length, score, move_index, overshot, ticks, created_at`

// RoundByID retrieves a round by its ID.
func (s *Store) RoundByID(roundID string) (*RoundRecord, error) {
	id, err := uuid.Parse(roundID)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid round id %q: %w", roundID, err)
	}

	row := s.db.QueryRow(`SELECT `+roundColumns+` FROM rounds WHERE round_id = ?`, id.String())
	r, err := scanRound(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoundNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	return r, nil
}

// RecentRounds returns the latest rounds for a game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []RoundRecord
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rounds = append(rounds, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRound(row rowScanner) (*RoundRecord, error) {
	var r RoundRecord
	var createdAt any
	err := row.Scan(
		&r.RoundID,
		&r.GameID,
		&r.Seed,
		&r.RoadLength,
		&r.Score,
		&r.MoveIndex,
		&r.Overshot,
		&r.Ticks,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}
