package signup

import "strings"

// RecordWidth is the number of fields a row must carry to be admitted
const RecordWidth = 6

// Column binds an output column to the encoder for its SQL type
type Column struct {
	Name   string
	Encode Encoder
}

// Columns is the fixed output column order of public.submissions
var Columns = [RecordWidth]Column{
	{Name: "id", Encode: Numeric},
	{Name: "created_at", Encode: Text},
	{Name: "soundcloud_url", Encode: Text},
	{Name: "round_id", Encode: Numeric},
	{Name: "additional_comments", Encode: Text},
	{Name: "user_id", Encode: Text},
}

// Record is one signup row, positionally bound to Columns
type Record [RecordWidth]string

// NewRecord admits a row with at least RecordWidth fields. Fields past the sixth are dropped.
func NewRecord(fields []string) (Record, bool) {
	var rec Record
	if len(fields) < RecordWidth {
		return rec, false
	}
	copy(rec[:], fields[:RecordWidth])
	return rec, true
}

// Values returns the encoded SQL literals in column order
func (r Record) Values() []string {
	values := make([]string, RecordWidth)
	for i, col := range Columns {
		values[i] = col.Encode(r[i])
	}
	return values
}

// Tuple renders the record as a VALUES tuple, e.g. (1, 'a', NULL, 3, 'b', 'c')
func (r Record) Tuple() string {
	return "(" + strings.Join(r.Values(), ", ") + ")"
}

// ColumnNames returns the column names in output order
func ColumnNames() []string {
	names := make([]string, RecordWidth)
	for i, col := range Columns {
		names[i] = col.Name
	}
	return names
}
