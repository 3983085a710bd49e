package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC)
}

func sampleLog() []Exercise {
	return []Exercise{
		{Description: "run", Duration: 30, Date: day(10)},
		{Description: "swim", Duration: 45, Date: day(1)},
		{Description: "bike", Duration: 60, Date: day(5)},
	}
}

func TestQueryLog(t *testing.T) {
	t.Run("SortsAscendingByDate", func(t *testing.T) {
		log := QueryLog(sampleLog(), LogQuery{})
		require.Len(t, log, 3)
		assert.Equal(t, "swim", log[0].Description)
		assert.Equal(t, "bike", log[1].Description)
		assert.Equal(t, "run", log[2].Description)
	})

	t.Run("FromFilterIsInclusive", func(t *testing.T) {
		log := QueryLog(sampleLog(), LogQuery{From: "2023-01-03"})
		require.Len(t, log, 2)
		assert.Equal(t, "bike", log[0].Description)
		assert.Equal(t, "run", log[1].Description)

		boundary := QueryLog(sampleLog(), LogQuery{From: "2023-01-05"})
		require.Len(t, boundary, 2)
		assert.Equal(t, "bike", boundary[0].Description)
	})

	t.Run("ToFilterIsInclusive", func(t *testing.T) {
		log := QueryLog(sampleLog(), LogQuery{To: "2023-01-05"})
		require.Len(t, log, 2)
		assert.Equal(t, "swim", log[0].Description)
		assert.Equal(t, "bike", log[1].Description)
	})

	t.Run("FromAndToCombine", func(t *testing.T) {
		log := QueryLog(sampleLog(), LogQuery{From: "2023-01-02", To: "2023-01-09"})
		require.Len(t, log, 1)
		assert.Equal(t, "bike", log[0].Description)
	})

	t.Run("UnparsableFromIsIgnored", func(t *testing.T) {
		log := QueryLog(sampleLog(), LogQuery{From: "garbage"})
		assert.Len(t, log, 3)
	})

	t.Run("UnparsableToIsIgnored", func(t *testing.T) {
		log := QueryLog(sampleLog(), LogQuery{To: "also garbage"})
		assert.Len(t, log, 3)
	})

	t.Run("LimitTruncatesAfterSort", func(t *testing.T) {
		log := QueryLog(sampleLog(), LogQuery{Limit: "1"})
		require.Len(t, log, 1)
		assert.Equal(t, "swim", log[0].Description)
	})

	t.Run("LimitZeroYieldsEmpty", func(t *testing.T) {
		log := QueryLog(sampleLog(), LogQuery{Limit: "0"})
		assert.Empty(t, log)
	})

	t.Run("InvalidLimitIsIgnored", func(t *testing.T) {
		assert.Len(t, QueryLog(sampleLog(), LogQuery{Limit: "abc"}), 3)
		assert.Len(t, QueryLog(sampleLog(), LogQuery{Limit: "-2"}), 3)
	})

	t.Run("LimitBeyondLengthIsNoop", func(t *testing.T) {
		assert.Len(t, QueryLog(sampleLog(), LogQuery{Limit: "10"}), 3)
	})

	t.Run("EqualDatesKeepInsertionOrder", func(t *testing.T) {
		entries := []Exercise{
			{Description: "first", Duration: 10, Date: day(1)},
			{Description: "second", Duration: 20, Date: day(1)},
			{Description: "third", Duration: 30, Date: day(1)},
		}
		log := QueryLog(entries, LogQuery{})
		require.Len(t, log, 3)
		assert.Equal(t, "first", log[0].Description)
		assert.Equal(t, "second", log[1].Description)
		assert.Equal(t, "third", log[2].Description)
	})

	t.Run("DoesNotMutateStoredLog", func(t *testing.T) {
		stored := sampleLog()
		QueryLog(stored, LogQuery{From: "2023-01-03", Limit: "1"})
		assert.Equal(t, "run", stored[0].Description)
		assert.Equal(t, "swim", stored[1].Description)
		assert.Equal(t, "bike", stored[2].Description)
	})

	t.Run("FormatsDates", func(t *testing.T) {
		log := QueryLog([]Exercise{{Description: "run", Duration: 30, Date: day(1)}}, LogQuery{})
		require.Len(t, log, 1)
		assert.Equal(t, "Sun Jan 01 2023", log[0].Date)
	})

	t.Run("EmptyLog", func(t *testing.T) {
		assert.Empty(t, QueryLog(nil, LogQuery{}))
	})
}
