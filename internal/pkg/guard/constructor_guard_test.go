package guard_test

import (
	"errors"
	"testing"

	"zapshift/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard(t *testing.T) {
	errNotConstructed := errors.New("parcel must be created via NewParcel")

	tests := []struct {
		name    string
		guard   guard.ConstructorGuard
		input   error
		wantErr error
	}{
		{name: "constructed_guard_passes", guard: guard.NewConstructorGuard(), input: errNotConstructed},
		{name: "constructed_guard_passes_with_nil_error", guard: guard.NewConstructorGuard(), input: nil},
		{name: "zero_guard_returns_given_error", guard: guard.ConstructorGuard{}, input: errNotConstructed, wantErr: errNotConstructed},
		{name: "zero_guard_falls_back_to_default", guard: guard.ConstructorGuard{}, input: nil, wantErr: guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.input)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestConstructorGuardEmbeddedInValueType(t *testing.T) {
	type district struct {
		name  string
		guard guard.ConstructorGuard
	}
	errDistrictNotConstructed := errors.New("district must be created via newDistrict")
	newDistrict := func(name string) district {
		return district{name: name, guard: guard.NewConstructorGuard()}
	}

	t.Run("copies_keep_the_guard", func(t *testing.T) {
		d := newDistrict("Dhaka")
		copied := d

		require.NoError(t, d.guard.Validate(errDistrictNotConstructed))
		require.NoError(t, copied.guard.Validate(errDistrictNotConstructed))
	})

	t.Run("literal_bypasses_constructor", func(t *testing.T) {
		d := district{name: "Dhaka"}

		assert.ErrorIs(t, d.guard.Validate(errDistrictNotConstructed), errDistrictNotConstructed)
	})
}

func BenchmarkConstructorGuardValidate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
