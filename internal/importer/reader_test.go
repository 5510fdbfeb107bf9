package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	src := strings.Join([]string{
		"Customer Name,Job Address,Job Price,When work is due",
		"John Smith,\"1 Rd, Leeds\",£45.00,05/03/2024",
		",,,",
		"Jane Doe,2 Ave,30,2024-04-01",
	}, "\n")

	rows, headers, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []string{"Customer Name", "Job Address", "Job Price", "When work is due"}, headers)
	require.Len(t, rows, 2, "blank row skipped")
	assert.Equal(t, "John Smith", rows[0]["Customer Name"])
	assert.Equal(t, "1 Rd, Leeds", rows[0]["Job Address"])
	assert.Equal(t, "£45.00", rows[0]["Job Price"])
	assert.Equal(t, "2024-04-01", rows[1]["When work is due"])
}

func TestReadCSVShortRowPadded(t *testing.T) {
	src := "Name,Address,Phone\nJohn,1 Rd\n"

	rows, _, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0]["Phone"])
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, _, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Customer Name", "Job Address", "Job Price", "When work is due"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"John Smith", "1 Rd, Leeds", "£45.00", "05/03/2024"}))
	// row 3 left empty
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{"Jane Doe", "2 Ave"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, headers, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, []string{"Customer Name", "Job Address", "Job Price", "When work is due"}, headers)
	require.Len(t, rows, 2, "blank row skipped")
	assert.Equal(t, "John Smith", rows[0]["Customer Name"])
	assert.Equal(t, "£45.00", rows[0]["Job Price"])
	assert.Equal(t, "", rows[1]["Job Price"], "short row padded")
	assert.Equal(t, "", rows[1]["When work is due"])

	tr := NewTransformer(nil)
	job, ok := tr.Transform(rows[0])
	require.True(t, ok)
	assert.Equal(t, "John Smith", job.Name)
	assert.Equal(t, "45.00", job.Price)
}
