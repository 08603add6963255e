package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", d.String())
	assert.Equal(t, domain.NewDate(2025, time.June, 1), d)

	for _, bad := range []string{"", "2025-6-1", "2025-02-30", "01/06/2025", "2025-06-01T10:00:00Z"} {
		_, err := domain.ParseDate(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidDate, bad)
	}
}

func TestDateOf_UsesCalendarOfLocation(t *testing.T) {
	instant := time.Date(2025, time.June, 1, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	assert.Equal(t, "2025-06-01", domain.DateOf(instant, nil).String())
	assert.Equal(t, "2025-06-02", domain.DateOf(instant, tokyo).String())
}

func TestDate_AddDaysAcrossMonthAndYear(t *testing.T) {
	assert.Equal(t, "2025-03-01", domain.MustParseDate("2025-02-28").AddDays(1).String())
	assert.Equal(t, "2024-02-29", domain.MustParseDate("2024-02-28").AddDays(1).String())
	assert.Equal(t, "2026-01-01", domain.MustParseDate("2025-12-31").AddDays(1).String())
	assert.Equal(t, "2025-05-31", domain.MustParseDate("2025-06-01").AddDays(-1).String())
}

func TestDate_TextRoundTrip(t *testing.T) {
	var d domain.Date
	require.NoError(t, d.UnmarshalText([]byte("2025-06-03")))
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", string(text))

	assert.Error(t, d.UnmarshalText([]byte("tomorrow")))
}

func TestNewDateRange_RejectsInvertedRange(t *testing.T) {
	start := domain.MustParseDate("2025-06-03")
	end := domain.MustParseDate("2025-06-01")

	_, err := domain.NewDateRange(start, end)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = domain.ParseDateRange("2025-06-03", "2025-06-01")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestNewDateRange_RejectsZeroDates(t *testing.T) {
	_, err := domain.NewDateRange(domain.Date{}, domain.MustParseDate("2025-06-01"))
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestDateRange_Dates(t *testing.T) {
	t.Run("single day expands to one date", func(t *testing.T) {
		r, err := domain.ParseDateRange("2025-06-01", "2025-06-01")
		require.NoError(t, err)

		dates := r.Dates()
		require.Len(t, dates, 1)
		assert.Equal(t, "2025-06-01", dates[0].String())
		assert.Equal(t, 1, r.Days())
	})

	t.Run("both endpoints included", func(t *testing.T) {
		r, err := domain.ParseDateRange("2025-06-01", "2025-06-03")
		require.NoError(t, err)

		var got []string
		for _, d := range r.Dates() {
			got = append(got, d.String())
		}
		assert.Equal(t, []string{"2025-06-01", "2025-06-02", "2025-06-03"}, got)
		assert.Equal(t, 3, r.Days())
	})

	t.Run("inverted literal expands to nothing", func(t *testing.T) {
		r := domain.DateRange{
			Start: domain.MustParseDate("2025-06-03"),
			End:   domain.MustParseDate("2025-06-01"),
		}
		assert.False(t, r.IsValid())
		assert.Empty(t, r.Dates())
		assert.Equal(t, 0, r.Days())
	})

	t.Run("zero range expands to nothing", func(t *testing.T) {
		assert.Empty(t, domain.DateRange{}.Dates())
	})
}

func TestDateRange_Overlaps(t *testing.T) {
	base, _ := domain.ParseDateRange("2025-06-10", "2025-06-15")

	tests := []struct {
		name     string
		start    string
		end      string
		expected bool
	}{
		{"ends the day base starts", "2025-06-05", "2025-06-10", true},
		{"starts the day base ends", "2025-06-15", "2025-06-20", true},
		{"inside", "2025-06-11", "2025-06-12", true},
		{"covers", "2025-06-01", "2025-06-30", true},
		{"entirely before", "2025-06-01", "2025-06-09", false},
		{"entirely after", "2025-06-16", "2025-06-20", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other, err := domain.ParseDateRange(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, base.Overlaps(other))
			assert.Equal(t, tt.expected, other.Overlaps(base))
		})
	}
}

func TestDateRange_Contains(t *testing.T) {
	r, _ := domain.ParseDateRange("2025-06-10", "2025-06-12")

	assert.True(t, r.Contains(domain.MustParseDate("2025-06-10")))
	assert.True(t, r.Contains(domain.MustParseDate("2025-06-12")))
	assert.False(t, r.Contains(domain.MustParseDate("2025-06-09")))
	assert.False(t, r.Contains(domain.MustParseDate("2025-06-13")))
}

func TestResolveWindow(t *testing.T) {
	today := domain.MustParseDate("2025-06-01")

	t.Run("defaults to ninety days from today", func(t *testing.T) {
		w, err := domain.ResolveWindow(nil, nil, today, 0)
		require.NoError(t, err)
		assert.Equal(t, today, w.Start)
		assert.Equal(t, "2025-08-29", w.End.String())
		assert.Equal(t, domain.DefaultWindowDays, w.Days())
	})

	t.Run("explicit bounds", func(t *testing.T) {
		from := domain.MustParseDate("2025-07-01")
		to := domain.MustParseDate("2025-07-31")
		w, err := domain.ResolveWindow(&from, &to, today, 90)
		require.NoError(t, err)
		assert.Equal(t, from, w.Start)
		assert.Equal(t, to, w.End)
	})

	t.Run("start only uses configured length", func(t *testing.T) {
		from := domain.MustParseDate("2025-07-01")
		w, err := domain.ResolveWindow(&from, nil, today, 30)
		require.NoError(t, err)
		assert.Equal(t, "2025-07-30", w.End.String())
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		from := domain.MustParseDate("2025-07-10")
		to := domain.MustParseDate("2025-07-01")
		_, err := domain.ResolveWindow(&from, &to, today, 90)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})
}

func TestDate_FirstCalendarDayIsValid(t *testing.T) {
	first := domain.MustParseDate("0001-01-01")
	assert.False(t, first.IsZero())
	assert.Equal(t, "0001-01-01", first.String())
	assert.True(t, domain.Date{}.IsZero())
	assert.True(t, domain.Date{}.AddDays(3).IsZero())

	r, err := domain.NewDateRange(first, domain.MustParseDate("0001-01-03"))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Days())
}

func TestDateRange_DaysAcrossCenturies(t *testing.T) {
	r, err := domain.ParseDateRange("0001-01-01", "9999-12-31")
	require.NoError(t, err)
	assert.Equal(t, 3652059, r.Days())
	assert.ErrorIs(t, domain.CheckSpan(r), domain.ErrWindowTooLarge)
}

func TestCheckSpan(t *testing.T) {
	year, err := domain.ParseDateRange("2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxWindowDays, year.Days())
	assert.NoError(t, domain.CheckSpan(year))

	longer, err := domain.ParseDateRange("2024-01-01", "2025-01-01")
	require.NoError(t, err)
	assert.ErrorIs(t, domain.CheckSpan(longer), domain.ErrWindowTooLarge)
}

func TestResolveWindow_Limits(t *testing.T) {
	today := domain.MustParseDate("2025-06-01")

	t.Run("explicit first calendar day is kept", func(t *testing.T) {
		from := domain.MustParseDate("0001-01-01")
		w, err := domain.ResolveWindow(&from, nil, today, 90)
		require.NoError(t, err)
		assert.Equal(t, "0001-01-01", w.Start.String())
		assert.Equal(t, "0001-03-31", w.End.String())
	})

	t.Run("oversized explicit window is rejected", func(t *testing.T) {
		from := domain.MustParseDate("0001-01-01")
		to := domain.MustParseDate("9999-12-31")
		_, err := domain.ResolveWindow(&from, &to, today, 90)
		assert.ErrorIs(t, err, domain.ErrWindowTooLarge)
	})

	t.Run("configured length is capped", func(t *testing.T) {
		w, err := domain.ResolveWindow(nil, nil, today, 10000)
		require.NoError(t, err)
		assert.Equal(t, domain.MaxWindowDays, w.Days())
	})
}
