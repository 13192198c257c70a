package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Project is one saved slab panel definition belonging to a user. The
// panel input is stored as the raw JSON payload the calculators accept.
type Project struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Panel     json.RawMessage `json:"panel"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)

	SaveProject(ctx context.Context, userID int, name string, panel json.RawMessage) (int, error)
	ListProjects(ctx context.Context, userID int) ([]Project, error)
	GetProject(ctx context.Context, userID, id int) (Project, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveProject(ctx context.Context, userID int, name string, panel json.RawMessage) (int, error) {
	var id int
	query := `INSERT INTO projects (user_id, name, panel, created_at)
	          VALUES ($1, $2, $3, NOW()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, name, []byte(panel)).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListProjects(ctx context.Context, userID int) ([]Project, error) {
	query := `SELECT id, name, panel, created_at FROM projects
	          WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		var raw []byte
		if err := rows.Scan(&p.ID, &p.Name, &raw, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Panel = json.RawMessage(raw)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetProject(ctx context.Context, userID, id int) (Project, error) {
	var p Project
	var raw []byte
	query := "SELECT id, name, panel, created_at FROM projects WHERE user_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&p.ID, &p.Name, &raw, &p.CreatedAt)
	if err != nil {
		return Project{}, err
	}
	p.Panel = json.RawMessage(raw)
	return p, nil
}
