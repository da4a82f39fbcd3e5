package listing_test

import (
	"testing"

	"propertyservice/internal/core/domain/model/listing"
	"propertyservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should normalize case before matching", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected listing.Status
		}{
			{"Available", listing.StatusAvailable},
			{"available", listing.StatusAvailable},
			{"AVAILABLE", listing.StatusAvailable},
			{"aVaIlAbLe", listing.StatusAvailable},
			{"sold", listing.StatusSold},
			{"rented", listing.StatusRented},
			{"  sold  ", listing.StatusSold},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				status, err := listing.ParseStatus(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should fail on unknown value", func(t *testing.T) {
		status, err := listing.ParseStatus("reserved")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status")
		assert.Empty(t, status)
	})

	t.Run("should fail on empty value", func(t *testing.T) {
		_, err := listing.ParseStatus("")

		require.Error(t, err)
	})
}

func TestParsePropertyType(t *testing.T) {
	t.Run("should normalize case before matching", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected listing.PropertyType
		}{
			{"Land", listing.TypeLand},
			{"land", listing.TypeLand},
			{"HOUSE", listing.TypeHouse},
			{"apartment", listing.TypeApartment},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				ptype, err := listing.ParsePropertyType(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, ptype)
			})
		}
	})

	t.Run("should fail on unknown value", func(t *testing.T) {
		ptype, err := listing.ParsePropertyType("castle")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "type")
		assert.Empty(t, ptype)
	})
}

func TestParseRegion(t *testing.T) {
	t.Run("should normalize case before matching", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected listing.Region
		}{
			{"Madhesh", listing.RegionMadhesh},
			{"madhesh", listing.RegionMadhesh},
			{"BAGMATI", listing.RegionBagmati},
			{"koshi", listing.RegionKoshi},
			{"sudurpashchim", listing.RegionSudurpashchim},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				region, err := listing.ParseRegion(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, region)
			})
		}
	})

	t.Run("should fail on unknown value", func(t *testing.T) {
		region, err := listing.ParseRegion("atlantis")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "state")
		assert.Empty(t, region)
	})
}

func TestEnum_Validate(t *testing.T) {
	t.Run("should pass for canonical values", func(t *testing.T) {
		require.NoError(t, listing.StatusAvailable.Validate())
		require.NoError(t, listing.TypeApartment.Validate())
		require.NoError(t, listing.RegionGandaki.Validate())
	})

	t.Run("should fail for non-canonical casing", func(t *testing.T) {
		require.Error(t, listing.Status("available").Validate())
		require.Error(t, listing.PropertyType("LAND").Validate())
		require.Error(t, listing.Region("madhesh").Validate())
	})

	t.Run("should fail for zero values", func(t *testing.T) {
		var status listing.Status
		var ptype listing.PropertyType
		var region listing.Region

		require.Error(t, status.Validate())
		require.Error(t, ptype.Validate())
		require.Error(t, region.Validate())
	})
}
