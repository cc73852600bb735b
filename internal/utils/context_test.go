package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/jobseekr/go-job-board/models"
)

func TestGetUserFromContext(t *testing.T) {
	user := models.User{ID: uuid.New(), Name: "John"}
	ctx := context.WithValue(context.Background(), UserCtxKey, user)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected the user to be found in the context")
	}
	if got.ID != user.ID {
		t.Errorf("expected user id %s, got %s", user.ID, got.ID)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	if _, ok := GetUserFromContext(context.Background()); ok {
		t.Error("expected ok to be false for an empty context")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not a user")

	if _, ok := GetUserFromContext(ctx); ok {
		t.Error("expected ok to be false for a mistyped value")
	}
}
