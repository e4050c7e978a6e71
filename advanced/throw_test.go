package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom %d!", 3)
		}

		if shouldPanic {
			var points []int
			_ = points[1]
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom 3!")

		var assumption AssumptionError
		require.True(t, errors.As(err, &assumption))
		assert.NotNil(t, errors.Unwrap(assumption))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestAssume(t *testing.T) {
	assert.True(t, assume(true, "never"))

	if assertionsEnabled {
		assert.PanicsWithError(t, "broken 1", func() {
			assume(false, "broken %d", 1)
		})
	} else {
		assert.NotPanics(t, func() {
			assert.False(t, assume(false, "broken %d", 1))
		})
	}
}

func TestValidCount(t *testing.T) {
	assert.True(t, validCount(0, 0))
	assert.True(t, validCount(3, 3))
	assert.True(t, validCount(2, 3))
	if !assertionsEnabled {
		assert.False(t, validCount(4, 3))
		assert.False(t, validCount(-1, 3))
	}
}

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(0, 4))
	assert.Equal(t, 0, CircularIndex(4, 4))
	assert.Equal(t, 3, CircularIndex(-1, 4))
	assert.Equal(t, 1, CircularIndex(9, 4))
	assert.Equal(t, 2, CircularIndex(-6, 4))
}
