// Package sessionstore persiste las sesiones del gateway en un archivo
// SQLite local: el equivalente duradero del localStorage del navegador.
// Usa el driver puro Go modernc.org/sqlite; no requiere cgo.
package sessionstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

const esquema = `
CREATE TABLE IF NOT EXISTS sesiones (
  id        TEXT PRIMARY KEY,
  token     TEXT NOT NULL,
  usuario   TEXT NOT NULL,
  creada_en INTEGER NOT NULL,
  expira_en INTEGER NOT NULL
);`

// Store almacenamiento de sesiones sobre SQLite. Implementa
// auth.SesionStore.
type Store struct {
	db *sqlx.DB
}

// New abre (o crea) la base en la ruta dada; ":memory:" para tests.
func New(ruta string) (*Store, error) {
	db, err := sqlx.Open("sqlite", ruta)
	if err != nil {
		return nil, fmt.Errorf("sessionstore: abrir %s: %w", ruta, err)
	}
	// Una sola conexión: evita SQLITE_BUSY con el driver puro Go y hace
	// que ":memory:" apunte siempre a la misma base.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(esquema); err != nil {
		return nil, fmt.Errorf("sessionstore: crear esquema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra la base.
func (s *Store) Close() error { return s.db.Close() }

type filaSesion struct {
	ID       string `db:"id"`
	Token    string `db:"token"`
	Usuario  string `db:"usuario"`
	CreadaEn int64  `db:"creada_en"`
	ExpiraEn int64  `db:"expira_en"`
}

// Guardar inserta o reemplaza la sesión.
func (s *Store) Guardar(ctx context.Context, sesion *entity.Sesion) error {
	usuario, err := json.Marshal(sesion.Usuario)
	if err != nil {
		return fmt.Errorf("sessionstore: serializar usuario: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sesiones (id, token, usuario, creada_en, expira_en)
		 VALUES (?, ?, ?, ?, ?)`,
		sesion.ID, sesion.Token, string(usuario),
		sesion.CreadaEn.Unix(), sesion.ExpiraEn.Unix(),
	)
	if err != nil {
		return fmt.Errorf("sessionstore: guardar sesión: %w", err)
	}
	return nil
}

// Obtener devuelve la sesión o (nil, nil) si no existe.
func (s *Store) Obtener(ctx context.Context, id string) (*entity.Sesion, error) {
	var fila filaSesion
	err := s.db.GetContext(ctx, &fila, `SELECT id, token, usuario, creada_en, expira_en FROM sesiones WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sessionstore: leer sesión: %w", err)
	}

	var usuario entity.Usuario
	if err := json.Unmarshal([]byte(fila.Usuario), &usuario); err != nil {
		return nil, fmt.Errorf("sessionstore: usuario corrupto en la sesión %s: %w", id, err)
	}
	return &entity.Sesion{
		ID:       fila.ID,
		Token:    fila.Token,
		Usuario:  usuario,
		CreadaEn: time.Unix(fila.CreadaEn, 0),
		ExpiraEn: time.Unix(fila.ExpiraEn, 0),
	}, nil
}

// Eliminar borra la sesión; borrar una inexistente no es error.
func (s *Store) Eliminar(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sesiones WHERE id = ?`, id); err != nil {
		return fmt.Errorf("sessionstore: eliminar sesión: %w", err)
	}
	return nil
}

// EliminarExpiradas purga toda sesión vencida en el instante dado.
func (s *Store) EliminarExpiradas(ctx context.Context, ahora time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sesiones WHERE expira_en <= ?`, ahora.Unix())
	if err != nil {
		return 0, fmt.Errorf("sessionstore: purgar sesiones: %w", err)
	}
	return res.RowsAffected()
}
