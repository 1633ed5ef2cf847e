package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDailyCountsQuery_ValidInput(t *testing.T) {
	testCases := []struct {
		name       string
		kind       queries.CountKind
		windowDays int
	}{
		{name: "shipments over a week", kind: queries.CountShipments, windowDays: 7},
		{name: "orders over one day", kind: queries.CountOrders, windowDays: 1},
		{name: "shipments over a year", kind: queries.CountShipments, windowDays: 365},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := queries.NewDailyCountsQuery(tc.kind, tc.windowDays)

			require.NoError(t, err)
			assert.Equal(t, tc.kind, query.Kind())
			assert.Equal(t, tc.windowDays, query.WindowDays())
			assert.NoError(t, query.Validate())
		})
	}
}

func TestNewDailyCountsQuery_InvalidKind(t *testing.T) {
	_, err := queries.NewDailyCountsQuery(queries.CountKind("payments"), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewDailyCountsQuery_WindowOutOfRange(t *testing.T) {
	for _, windowDays := range []int{0, -1, 366} {
		_, err := queries.NewDailyCountsQuery(queries.CountShipments, windowDays)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestDailyCountsQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.DailyCountsQuery

	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrDailyCountsQueryIsNotConstructed)
}
