package sessionstore

import (
	"context"
	"medichat-service/internal/app/models"
	"medichat-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemorySessionStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	session, err := store.Create(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, models.StepName, session.Step)

	fetched, err := store.Get(ctx, session.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, session.SessionID, fetched.SessionID)
}

func TestMemorySessionStore_Get_NotFound(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get(context.Background(), "missing")

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestMemorySessionStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	session, _ := store.Create(ctx)

	fetched, _ := store.Get(ctx, session.SessionID)
	fetched.Data[models.FieldName] = "mutated locally"
	fetched.Step = models.StepWeight

	again, _ := store.Get(ctx, session.SessionID)
	assert.Empty(t, again.Data)
	assert.Equal(t, models.StepName, again.Step)
}

func TestMemorySessionStore_Update(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()

	session, _ := store.Create(ctx)
	session.Data[models.FieldName] = "Jane Roe"
	session.Step = models.StepAge

	assert.NoError(t, store.Update(ctx, session))

	fetched, _ := store.Get(ctx, session.SessionID)
	assert.Equal(t, models.StepAge, fetched.Step)
	assert.Equal(t, "Jane Roe", fetched.Data[models.FieldName])
}

func TestMemorySessionStore_Update_NotFound(t *testing.T) {
	store := NewMemorySessionStore()

	err := store.Update(context.Background(), models.NewIntakeSession("missing"))

	assert.Error(t, err)
}
