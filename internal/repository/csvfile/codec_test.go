package csvfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedTable = "employee_id,date,clock_in,clock_out,worked_hours\n" +
	"emp-1,2024-01-15,09:00:00,17:00:00,8:00:00\n" +
	"emp-1,2024-01-15,18:00:00,,\n" +
	"emp-2,2024-01-15,09:30:00,NO_CHECKOUT,\n"

func TestDecode_WellFormedTable(t *testing.T) {
	records, err := Decode(strings.NewReader(wellFormedTable))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, ledger.Record{
		EmployeeID:  "emp-1",
		Date:        "2024-01-15",
		ClockIn:     "09:00:00",
		ClockOut:    "17:00:00",
		WorkedHours: "8:00:00",
	}, records[0])

	assert.True(t, records[1].Open())
	assert.Equal(t, "", records[1].WorkedHours)

	// The sentinel is stored verbatim and the row counts as closed.
	assert.False(t, records[2].Open())
	assert.Equal(t, ledger.NoCheckout, records[2].ClockOut)
}

func TestDecode_EmptySource(t *testing.T) {
	records, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecode_WrongColumnCount(t *testing.T) {
	raw := "employee_id,date,clock_in,clock_out,worked_hours\n" +
		"emp-1,2024-01-15,09:00:00\n"

	_, err := Decode(strings.NewReader(raw))
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrMalformedLedger)
}

func TestDecode_UnexpectedHeader(t *testing.T) {
	raw := "a,b,c,d,e\n" +
		"emp-1,2024-01-15,09:00:00,,\n"

	_, err := Decode(strings.NewReader(raw))
	assert.ErrorIs(t, err, ledger.ErrMalformedLedger)
}

func TestEncode_RoundTrip(t *testing.T) {
	records, err := Decode(strings.NewReader(wellFormedTable))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, records))

	assert.Equal(t, wellFormedTable, buf.String())
}

func TestEncode_EmptyLedgerWritesHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "employee_id,date,clock_in,clock_out,worked_hours\n", buf.String())
}
