package preset

import (
	"context"
	"database/sql"
	"encoding/json"
	errs "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mkyte/paddock/internal/setup"
	"github.com/mkyte/paddock/internal/util"
)

// ErrNoChange is returned by sync paths when the revision has not advanced.
var ErrNoChange = errs.New("no change")

// ErrNotFound is returned when a preset id has no row.
var ErrNotFound = errs.New("preset not found")

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error   { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Open connects to the preset database per config.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, err
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// Preset is one named configuration bundle. EventSetup holds the serialized
// setup.Setup exactly as the store produced it; hydration routes it back
// through the import pipeline, so older schema revisions load fine.
type Preset struct {
	ID         uuid.UUID
	Name       string
	EventSetup json.RawMessage
	UpdatedAt  time.Time
}

// Repo provides preset CRUD.
type Repo struct{ db *DB }

func NewRepo(db *DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, name string) (Preset, error) {
	id := uuid.New()
	raw, _ := json.Marshal(setup.DefaultSetup())
	err := r.db.gorm.WithContext(ctx).Exec(
		`INSERT INTO presets(id, name, event_setup) VALUES (?,?,?)`,
		id, name, raw,
	).Error
	if err != nil {
		return Preset{}, errors.Wrap(err, "create preset")
	}
	return Preset{ID: id, Name: name, EventSetup: raw}, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (Preset, error) {
	row := r.db.gorm.WithContext(ctx).Raw(
		`SELECT id, name, event_setup, updated_at FROM presets WHERE id = ?`, id,
	).Row()
	var p Preset
	if err := row.Scan(&p.ID, &p.Name, &p.EventSetup, &p.UpdatedAt); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return Preset{}, ErrNotFound
		}
		return Preset{}, errors.Wrap(err, "get preset")
	}
	return p, nil
}

func (r *Repo) List(ctx context.Context) ([]Preset, error) {
	rows, err := r.db.gorm.WithContext(ctx).Raw(
		`SELECT id, name, event_setup, updated_at FROM presets ORDER BY name ASC`,
	).Rows()
	if err != nil {
		return nil, errors.Wrap(err, "list presets")
	}
	defer rows.Close()
	var out []Preset
	for rows.Next() {
		var p Preset
		if err := rows.Scan(&p.ID, &p.Name, &p.EventSetup, &p.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "scan preset")
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Rename(ctx context.Context, id uuid.UUID, name string) error {
	return errors.Wrap(r.db.gorm.WithContext(ctx).Exec(
		`UPDATE presets SET name = ?, updated_at = now() WHERE id = ?`, name, id,
	).Error, "rename preset")
}

func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.Wrap(r.db.gorm.WithContext(ctx).Exec(
		`DELETE FROM presets WHERE id = ?`, id,
	).Error, "delete preset")
}

// SaveSetup writes the serialized event setup back to its preset row.
func (r *Repo) SaveSetup(ctx context.Context, id uuid.UUID, raw json.RawMessage) error {
	return errors.Wrap(r.db.gorm.WithContext(ctx).Exec(
		`UPDATE presets SET event_setup = ?, updated_at = now() WHERE id = ?`, raw, id,
	).Error, "save event setup")
}

// Hydrate loads a preset's setup into the store, replacing whatever the
// store held. The raw payload goes through the import pipeline so partial or
// legacy shapes repair instead of failing.
func (r *Repo) Hydrate(ctx context.Context, id uuid.UUID, store *setup.Store) ([]setup.Issue, error) {
	p, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	store.Reset()
	return store.ImportJSON(p.EventSetup), nil
}

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}
