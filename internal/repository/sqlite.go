package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"lostfound-tracker/internal/lferrors"
	model "lostfound-tracker/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id    TEXT PRIMARY KEY,
	email      TEXT NOT NULL,
	name       TEXT NOT NULL,
	phone      TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS lost_items (
	item_id            TEXT PRIMARY KEY,
	user_id            TEXT NOT NULL,
	district_id        TEXT NOT NULL,
	venue_id           TEXT NOT NULL,
	item_name          TEXT NOT NULL,
	description        TEXT NOT NULL,
	category           TEXT NOT NULL,
	date_lost          TEXT NOT NULL,
	security_questions TEXT NOT NULL,
	status             TEXT NOT NULL,
	created_at         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS found_items (
	item_id            TEXT PRIMARY KEY,
	user_id            TEXT NOT NULL,
	district_id        TEXT NOT NULL,
	venue_id           TEXT NOT NULL,
	item_name          TEXT NOT NULL,
	description        TEXT NOT NULL,
	category           TEXT NOT NULL,
	date_found         TEXT NOT NULL,
	photos             TEXT NOT NULL,
	security_questions TEXT NOT NULL,
	status             TEXT NOT NULL,
	created_at         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS matches (
	match_id        TEXT PRIMARY KEY,
	lost_item_id    TEXT NOT NULL,
	found_item_id   TEXT NOT NULL,
	match_score     REAL NOT NULL,
	finder_contact  TEXT NOT NULL,
	claimer_contact TEXT NOT NULL,
	created_at      TEXT NOT NULL,
	UNIQUE (lost_item_id, found_item_id)
);
`

// SQLRepo is a sqlite-backed implementation of LostFoundDB. The unique index
// on (lost_item_id, found_item_id) enforces match-pair uniqueness at the
// storage boundary, closing the read-then-write race between concurrent
// discovery runs.
type SQLRepo struct {
	db *sql.DB
}

// OpenSQLRepo opens (or creates) the sqlite database at path and applies the schema
func OpenSQLRepo(path string) (*SQLRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &SQLRepo{db: db}, nil
}

// Close releases the underlying database handle
func (r *SQLRepo) Close() error {
	return r.db.Close()
}

// SaveUser inserts or replaces a user record
func (r *SQLRepo) SaveUser(user model.User) error {
	_, err := r.db.Exec(
		`INSERT INTO users (user_id, email, name, phone, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET email = excluded.email, name = excluded.name, phone = excluded.phone`,
		user.UserID, user.Email, user.Name, user.Phone, user.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving user %s: %w", user.UserID, err)
	}
	return nil
}

// GetUserContact returns the contact record for a user
func (r *SQLRepo) GetUserContact(userID string) (model.User, error) {
	var user model.User
	var createdAt string
	err := r.db.QueryRow(
		`SELECT user_id, email, name, phone, created_at FROM users WHERE user_id = ?`, userID,
	).Scan(&user.UserID, &user.Email, &user.Name, &user.Phone, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get contact for user %s: %w", userID, lferrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("querying user %s: %w", userID, err)
	}
	user.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.User{}, fmt.Errorf("parsing created_at for user %s: %w", userID, err)
	}
	return user, nil
}

// SaveLostItem inserts or replaces a lost item report
func (r *SQLRepo) SaveLostItem(item model.LostItem) error {
	questions, err := json.Marshal(item.SecurityQuestions)
	if err != nil {
		return fmt.Errorf("encoding security questions: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO lost_items (item_id, user_id, district_id, venue_id, item_name, description,
		                         category, date_lost, security_questions, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (item_id) DO UPDATE SET status = excluded.status`,
		item.ItemID, item.UserID, item.DistrictID, item.VenueID, item.ItemName, item.Description,
		item.Category, item.DateLost, string(questions), item.Status,
		item.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving lost item %s: %w", item.ItemID, err)
	}
	return nil
}

// SaveFoundItem inserts or replaces a found item report
func (r *SQLRepo) SaveFoundItem(item model.FoundItem) error {
	questions, err := json.Marshal(item.SecurityQuestions)
	if err != nil {
		return fmt.Errorf("encoding security questions: %w", err)
	}
	photos, err := json.Marshal(item.Photos)
	if err != nil {
		return fmt.Errorf("encoding photos: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO found_items (item_id, user_id, district_id, venue_id, item_name, description,
		                          category, date_found, photos, security_questions, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (item_id) DO UPDATE SET status = excluded.status`,
		item.ItemID, item.UserID, item.DistrictID, item.VenueID, item.ItemName, item.Description,
		item.Category, item.DateFound, string(photos), string(questions), item.Status,
		item.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving found item %s: %w", item.ItemID, err)
	}
	return nil
}

// GetFoundItem returns a found item by id
func (r *SQLRepo) GetFoundItem(itemID string) (model.FoundItem, error) {
	row := r.db.QueryRow(
		`SELECT item_id, user_id, district_id, venue_id, item_name, description,
		        category, date_found, photos, security_questions, status, created_at
		 FROM found_items WHERE item_id = ?`, itemID,
	)
	item, err := scanFoundItem(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.FoundItem{}, fmt.Errorf("get found item %s: %w", itemID, lferrors.ErrItemNotFound)
	}
	if err != nil {
		return model.FoundItem{}, fmt.Errorf("querying found item %s: %w", itemID, err)
	}
	return item, nil
}

func itemFilterClause(filter model.ItemFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.DistrictID != "" {
		conds = append(conds, "district_id = ?")
		args = append(args, filter.DistrictID)
	}
	if filter.VenueID != "" {
		conds = append(conds, "venue_id = ?")
		args = append(args, filter.VenueID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListLostItems returns lost items matching the filter, in insertion order
func (r *SQLRepo) ListLostItems(filter model.ItemFilter) ([]model.LostItem, error) {
	where, args := itemFilterClause(filter)
	rows, err := r.db.Query(
		`SELECT item_id, user_id, district_id, venue_id, item_name, description,
		        category, date_lost, security_questions, status, created_at
		 FROM lost_items`+where+` ORDER BY rowid`, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("listing lost items: %w", err)
	}
	defer rows.Close()

	items := make([]model.LostItem, 0)
	for rows.Next() {
		var item model.LostItem
		var questions, createdAt string
		if err := rows.Scan(&item.ItemID, &item.UserID, &item.DistrictID, &item.VenueID,
			&item.ItemName, &item.Description, &item.Category, &item.DateLost,
			&questions, &item.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning lost item: %w", err)
		}
		if err := json.Unmarshal([]byte(questions), &item.SecurityQuestions); err != nil {
			return nil, fmt.Errorf("decoding security questions: %w", err)
		}
		if item.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanFoundItem(scan func(dest ...any) error) (model.FoundItem, error) {
	var item model.FoundItem
	var photos, questions, createdAt string
	if err := scan(&item.ItemID, &item.UserID, &item.DistrictID, &item.VenueID,
		&item.ItemName, &item.Description, &item.Category, &item.DateFound,
		&photos, &questions, &item.Status, &createdAt); err != nil {
		return model.FoundItem{}, err
	}
	if err := json.Unmarshal([]byte(photos), &item.Photos); err != nil {
		return model.FoundItem{}, fmt.Errorf("decoding photos: %w", err)
	}
	if err := json.Unmarshal([]byte(questions), &item.SecurityQuestions); err != nil {
		return model.FoundItem{}, fmt.Errorf("decoding security questions: %w", err)
	}
	var err error
	if item.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.FoundItem{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return item, nil
}

// ListFoundItems returns found items matching the filter, in insertion order
func (r *SQLRepo) ListFoundItems(filter model.ItemFilter) ([]model.FoundItem, error) {
	where, args := itemFilterClause(filter)
	rows, err := r.db.Query(
		`SELECT item_id, user_id, district_id, venue_id, item_name, description,
		        category, date_found, photos, security_questions, status, created_at
		 FROM found_items`+where+` ORDER BY rowid`, args...,
	)
	if err != nil {
		return nil, fmt.Errorf("listing found items: %w", err)
	}
	defer rows.Close()

	items := make([]model.FoundItem, 0)
	for rows.Next() {
		item, err := scanFoundItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning found item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListMatches returns all stored matches in insertion order
func (r *SQLRepo) ListMatches() ([]model.Match, error) {
	rows, err := r.db.Query(
		`SELECT match_id, lost_item_id, found_item_id, match_score, finder_contact, claimer_contact, created_at
		 FROM matches ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	defer rows.Close()

	matches := make([]model.Match, 0)
	for rows.Next() {
		var m model.Match
		var createdAt string
		if err := rows.Scan(&m.MatchID, &m.LostItemID, &m.FoundItemID, &m.MatchScore,
			&m.FinderContact, &m.ClaimerContact, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		if m.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// CreateMatch appends a match. A duplicate (lost_item_id, found_item_id) pair
// violates the unique index and maps to ErrMatchExists.
func (r *SQLRepo) CreateMatch(m model.Match) error {
	_, err := r.db.Exec(
		`INSERT INTO matches (match_id, lost_item_id, found_item_id, match_score, finder_contact, claimer_contact, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.LostItemID, m.FoundItemID, m.MatchScore, m.FinderContact, m.ClaimerContact,
		m.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("create match for pair (%s, %s): %w", m.LostItemID, m.FoundItemID, lferrors.ErrMatchExists)
		}
		return fmt.Errorf("creating match %s: %w", m.MatchID, err)
	}
	return nil
}
