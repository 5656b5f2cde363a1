package conversation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitRecordsKeepsRecordsTogether(t *testing.T) {
	records := []string{
		strings.Repeat("а", 2000),
		strings.Repeat("б", 2000),
		strings.Repeat("в", 100),
	}

	chunks := SplitRecords(records, maxChunkLen)
	require.Len(t, chunks, 2)
	require.Equal(t, records[0], chunks[0])
	require.Equal(t, records[1]+recordSeparator+records[2], chunks[1])
	for _, c := range chunks {
		require.LessOrEqual(t, len([]rune(c)), maxChunkLen)
	}
}

func TestSplitRecordsHardSplitsOversizeRecord(t *testing.T) {
	big := strings.Repeat("ц", maxChunkLen+500)
	chunks := SplitRecords([]string{big}, maxChunkLen)

	require.Len(t, chunks, 2)
	require.Equal(t, maxChunkLen, len([]rune(chunks[0])))
	require.Equal(t, 500, len([]rune(chunks[1])))
	require.Equal(t, big, strings.Join(chunks, ""))
}

func TestSplitRecordsCountsRunesNotBytes(t *testing.T) {
	// Cyrillic is two bytes per rune; a byte-based split would cut early.
	rec := strings.Repeat("ж", 30)
	chunks := SplitRecords([]string{rec, rec}, 40)

	require.Len(t, chunks, 2)
	require.Equal(t, rec, chunks[0])
	require.Equal(t, rec, chunks[1])
}

func TestSplitRecordsPreservesOrder(t *testing.T) {
	records := []string{"первая", "вторая", "третья"}
	chunks := SplitRecords(records, maxChunkLen)

	require.Len(t, chunks, 1)
	require.Equal(t, "первая\n\nвторая\n\nтретья", chunks[0])
}

func TestSplitRecordsSkipsEmpty(t *testing.T) {
	chunks := SplitRecords([]string{"", "запись", ""}, maxChunkLen)
	require.Equal(t, []string{"запись"}, chunks)
}
