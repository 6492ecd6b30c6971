package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassify_DomainErrorWins(t *testing.T) {
	domain := NotFound(EntityArticle)
	got := Classify(fmt.Errorf("service: %w", domain))

	assert.Same(t, domain, got)
	assert.Equal(t, KindNotFound, got.Kind)
	assert.Equal(t, "Article not found", got.Message)
}

func TestClassify_StoreClientCodes(t *testing.T) {
	for _, code := range []string{"22P02", "23502", "23503"} {
		t.Run(code, func(t *testing.T) {
			err := fmt.Errorf("failed to create comment: %w", &pgconn.PgError{Code: code})
			got := Classify(err)

			assert.Equal(t, KindBadRequest, got.Kind)
			assert.Equal(t, "Bad request", got.Message)
			assert.Equal(t, 400, got.Status())
		})
	}
}

func TestClassify_LibPQError(t *testing.T) {
	got := Classify(&pq.Error{Code: "23503"})
	assert.Equal(t, KindBadRequest, got.Kind)
}

func TestClassify_OtherStoreCodesAreInternal(t *testing.T) {
	// unique_violation is not a client error for this API
	got := Classify(&pgconn.PgError{Code: "23505", Message: "duplicate key"})

	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, "Internal server error", got.Message)
	assert.NotContains(t, got.Message, "duplicate")
}

func TestClassify_UnknownIsInternal(t *testing.T) {
	got := Classify(errors.New("boom"))

	assert.Equal(t, KindInternal, got.Kind)
	assert.Equal(t, 500, got.Status())
}

func TestStoreCodeName(t *testing.T) {
	assert.Equal(t, "foreign_key_violation", StoreCodeName(&pgconn.PgError{Code: "23503"}))
	assert.Equal(t, "invalid_text_representation", StoreCodeName(&pgconn.PgError{Code: "22P02"}))
	assert.Equal(t, "", StoreCodeName(errors.New("plain")))
}
