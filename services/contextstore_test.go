package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrikiApp/briki-api/models"
)

const testSessionID = "5f02e4a1-9c2b-4c3e-9d61-2a8f33f1b0aa"

func newTestStore(t *testing.T) (*ContextStore, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	return NewContextStore(db, cache), mock, mr
}

func TestContextStore_GetNewSession(t *testing.T) {
	store, mock, _ := newTestStore(t)

	mock.ExpectQuery("SELECT context FROM chat_contexts").
		WithArgs(testSessionID).
		WillReturnError(sql.ErrNoRows)

	got, err := store.Get(context.Background(), testSessionID)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContextStore_SaveThenGetFromCache(t *testing.T) {
	store, mock, _ := newTestStore(t)

	uc := models.UserContext{
		Pet: &models.PetContext{Type: "dog", Breed: "Golden Retriever"},
	}

	mock.ExpectExec("INSERT INTO chat_contexts").
		WithArgs(testSessionID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Save(context.Background(), testSessionID, uc))

	// Save fills the cache, so the read never touches Postgres.
	got, err := store.Get(context.Background(), testSessionID)
	require.NoError(t, err)
	require.NotNil(t, got.Pet)
	assert.Equal(t, "Golden Retriever", got.Pet.Breed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContextStore_GetFallsThroughToPostgres(t *testing.T) {
	store, mock, mr := newTestStore(t)
	mr.FlushAll()

	uc := models.UserContext{Travel: &models.TravelContext{Destination: "Europa"}}
	raw, err := json.Marshal(uc)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT context FROM chat_contexts").
		WithArgs(testSessionID).
		WillReturnRows(sqlmock.NewRows([]string{"context"}).AddRow(raw))

	got, err := store.Get(context.Background(), testSessionID)
	require.NoError(t, err)
	require.NotNil(t, got.Travel)
	assert.Equal(t, "Europa", got.Travel.Destination)

	// The DB hit should have warmed the cache.
	assert.True(t, mr.Exists(contextCacheKey(testSessionID)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContextStore_Delete(t *testing.T) {
	store, mock, mr := newTestStore(t)
	mr.Set(contextCacheKey(testSessionID), `{}`)

	mock.ExpectExec("DELETE FROM chat_contexts").
		WithArgs(testSessionID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), testSessionID))
	assert.False(t, mr.Exists(contextCacheKey(testSessionID)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContextStore_WorksWithoutRedis(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewContextStore(db, nil)

	mock.ExpectExec("INSERT INTO chat_contexts").
		WithArgs(testSessionID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	uc := models.UserContext{Location: &models.LocationContext{City: "Bogotá"}}
	require.NoError(t, store.Save(context.Background(), testSessionID, uc))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContextStore_LogQuoteRequest(t *testing.T) {
	store, mock, _ := newTestStore(t)

	mock.ExpectExec("INSERT INTO quote_requests").
		WithArgs(testSessionID, "travel", sqlmock.AnyArg(), "recommended", 3).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.LogQuoteRequest(context.Background(), testSessionID,
		models.CategoryTravel, models.DefaultCriteria(), models.SortRecommended, 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContextStore_LogQuoteRequestAnonymous(t *testing.T) {
	store, mock, _ := newTestStore(t)

	mock.ExpectExec("INSERT INTO quote_requests").
		WithArgs(nil, "auto", sqlmock.AnyArg(), "price-low", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.LogQuoteRequest(context.Background(), "",
		models.CategoryAuto, models.DefaultCriteria(), models.SortPriceLow, 0)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
