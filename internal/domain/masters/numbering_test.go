package masters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func previewTime() time.Time {
	return time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
}

func TestNumberingScheme_Preview_FullPattern(t *testing.T) {
	scheme := &NumberingScheme{
		Prefix:          "INV",
		DateFormat:      "200601",
		SequencePadding: 4,
		NextNumber:      42,
		Suffix:          "KHI",
	}

	assert.Equal(t, "INV-202608-0042-KHI", scheme.Preview(previewTime()))
}

func TestNumberingScheme_Preview_NoDatePart(t *testing.T) {
	scheme := &NumberingScheme{
		Prefix:          "PV",
		SequencePadding: 6,
		NextNumber:      7,
	}

	assert.Equal(t, "PV-000007", scheme.Preview(previewTime()))
}

func TestNumberingScheme_Preview_SequenceOnly(t *testing.T) {
	scheme := &NumberingScheme{NextNumber: 15}

	assert.Equal(t, "15", scheme.Preview(previewTime()))
}

func TestNumberingScheme_Preview_CustomSeparator(t *testing.T) {
	scheme := &NumberingScheme{
		Prefix:          "MO",
		DateFormat:      "2006",
		SequencePadding: 3,
		NextNumber:      9,
		Separator:       "/",
	}

	assert.Equal(t, "MO/2026/009", scheme.Preview(previewTime()))
}

func TestNumberingScheme_Preview_SequenceWiderThanPadding(t *testing.T) {
	scheme := &NumberingScheme{
		Prefix:          "INV",
		SequencePadding: 3,
		NextNumber:      12345,
	}

	assert.Equal(t, "INV-12345", scheme.Preview(previewTime()))
}

func TestNumberingScheme_Preview_ZeroPadding(t *testing.T) {
	scheme := &NumberingScheme{
		Prefix:     "JV",
		NextNumber: 3,
	}

	assert.Equal(t, "JV-3", scheme.Preview(previewTime()))
}

func TestNumberingScheme_Preview_DailyDateFormat(t *testing.T) {
	scheme := &NumberingScheme{
		Prefix:          "RV",
		DateFormat:      "20060102",
		SequencePadding: 2,
		NextNumber:      1,
	}

	assert.Equal(t, "RV-20260825-01", scheme.Preview(previewTime()))
}
