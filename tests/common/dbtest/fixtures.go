//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// Conn is satisfied by a *pgxpool.Pool or a pgx.Tx.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestCustomer(t *testing.T, db Conn, name, email, phone string) int32 {
	t.Helper()

	var id int32
	err := db.QueryRow(context.Background(),
		"INSERT INTO korisnik (ime, email, telefon) VALUES ($1, $2, $3) RETURNING id",
		name, email, phone).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTestEquipment(t *testing.T, db Conn, name string, price float64, quantity int32) int32 {
	t.Helper()

	var id int32
	err := db.QueryRow(context.Background(),
		"INSERT INTO oprema (naziv, tip_id, dostupnost, cena, kolicina, lokacija) VALUES ($1, 1, true, $2, $3, 'Kopaonik') RETURNING id",
		name, price, quantity).Scan(&id)
	require.NoError(t, err)

	return id
}

// dates use YYYY-MM-DD
func CreateTestReservation(t *testing.T, db Conn, customerID, equipmentID int32, from, to string, quantity int32) int32 {
	t.Helper()

	var id int32
	err := db.QueryRow(context.Background(),
		"INSERT INTO rezervacija (korisnik_id, oprema_id, datum_rezervacije, datum_vracanja, kolicina, status) VALUES ($1, $2, $3::date, $4::date, $5, 'aktivna') RETURNING id",
		customerID, equipmentID, from, to, quantity).Scan(&id)
	require.NoError(t, err)

	return id
}

// rentalTables lists children before parents; CASCADE covers any order anyway.
var rentalTables = []string{"rezervacija", "oprema", "korisnik"}

// ResetDB empties every rental table and restarts the id sequences.
func ResetDB(db Conn) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE "+strings.Join(rentalTables, ", ")+" RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("reset rental tables: %w", err)
	}
	return nil
}
