package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
)

const dashboardStateTable = "dashboard_state"

// StateRepository é o armazenamento durável de estado do dashboard:
// um blob JSON por chave, sem transacionalidade entre chaves.
type StateRepository interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type stateRepository struct {
	conn *postgres.Connection
}

func NewStateRepository(conn *postgres.Connection) StateRepository {
	return &stateRepository{
		conn: conn,
	}
}

// Get retorna o valor persistido para a chave, ou nil se a chave não existe.
func (r *stateRepository) Get(key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("value").
		From(dashboardStateTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value []byte
	err = r.conn.QueryRow(query, args...).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar estado: %w", err)
	}

	return value, nil
}

func (r *stateRepository) Set(key string, value []byte) error {
	query, args, err := squirrel.
		Insert(dashboardStateTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar estado: %w", err)
	}

	return nil
}

func (r *stateRepository) Delete(key string) error {
	query, args, err := squirrel.
		Delete(dashboardStateTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover estado: %w", err)
	}

	return nil
}
