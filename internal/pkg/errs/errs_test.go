package errs_test

import (
	"errors"
	"testing"

	"propertyservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("propertyId", "123")

		assert.Equal(t, "propertyId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("propertyId", "123", cause)

		assert.Equal(t, "propertyId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: propertyId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestOwnerListingsNotFoundError(t *testing.T) {
	err := errs.NewOwnerListingsNotFoundError("550e8400-e29b-41d4-a716-446655440000")

	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", err.OwnerID)
	assert.Equal(t,
		"owner has no listings: ownerId is: 550e8400-e29b-41d4-a716-446655440000",
		err.Error())
	assert.Equal(t, errs.ErrOwnerListingsNotFound, err.Unwrap())
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("Mansion is not a known property type")
		err := errs.NewValueIsInvalidErrorWithCause("type", cause)

		assert.Equal(t, "type", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: type (cause: Mansion is not a known property type)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("title", errors.New("hello\nworld"))
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("title")

		assert.Equal(t, "title", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: title", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("ownerId", cause)

		assert.Equal(t, "ownerId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: ownerId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestPersistenceErrors(t *testing.T) {
	t.Run("SaveError preserves cause", func(t *testing.T) {
		cause := errors.New("deadlock detected")
		err := errs.NewSaveError("property", cause)

		assert.Equal(t, "property", err.Entity)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "save failed: property (cause: deadlock detected)", err.Error())
		assert.Equal(t, errs.ErrSaveFailed, err.Unwrap())
	})

	t.Run("FetchError preserves cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewFetchError("property", cause)

		assert.Equal(t, "fetch failed: property (cause: connection reset)", err.Error())
		assert.Equal(t, errs.ErrFetchFailed, err.Unwrap())
	})

	t.Run("MappingError preserves cause", func(t *testing.T) {
		cause := errors.New("unknown approval status 'sold'")
		err := errs.NewMappingError("property", cause)

		assert.Equal(t, "mapping failed: property (cause: unknown approval status 'sold')", err.Error())
		assert.Equal(t, errs.ErrMappingFailed, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrOwnerListingsNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrMappingFailed)
		require.Error(t, errs.ErrSaveFailed)
		require.Error(t, errs.ErrFetchFailed)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "owner has no listings", errs.ErrOwnerListingsNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "mapping failed", errs.ErrMappingFailed.Error())
		assert.Equal(t, "save failed", errs.ErrSaveFailed.Error())
		assert.Equal(t, "fetch failed", errs.ErrFetchFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("propertyId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewOwnerListingsNotFoundError("u1"), errs.ErrOwnerListingsNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("title"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewMappingError("property", errors.New("x")), errs.ErrMappingFailed)
		require.ErrorIs(t, errs.NewSaveError("property", errors.New("x")), errs.ErrSaveFailed)
		require.ErrorIs(t, errs.NewFetchError("property", errors.New("x")), errs.ErrFetchFailed)
	})
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, errs.IsDomainError(errs.NewObjectNotFoundError("propertyId", "123")))
	assert.True(t, errs.IsDomainError(errs.NewOwnerListingsNotFoundError("u1")))
	assert.True(t, errs.IsDomainError(errs.NewValueIsInvalidError("status")))
	assert.True(t, errs.IsDomainError(errs.NewValueIsRequiredError("title")))
	assert.True(t, errs.IsDomainError(errs.NewMappingError("property", nil)))

	assert.False(t, errs.IsDomainError(errs.NewSaveError("property", nil)))
	assert.False(t, errs.IsDomainError(errs.NewFetchError("property", nil)))
	assert.False(t, errs.IsDomainError(errors.New("some other error")))
}
