package signup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shaibs3/signupsql/internal/db"
)

const tupleIndent = "    "

// ErrNoRows is returned by Convert when no row qualified for the insert
var ErrNoRows = errors.New("signup: no qualifying rows")

// Result is the outcome of converting one signup export
type Result struct {
	Tuples    []string
	Read      int
	Admitted  int
	Skipped   int
	Statement string
}

// Header returns the INSERT line naming the target table and columns
func Header() string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES", db.SubmissionsTable, strings.Join(ColumnNames(), ", "))
}

// Statement joins tuples into a single INSERT statement terminated by a semicolon
func Statement(tuples []string) (string, error) {
	if len(tuples) == 0 {
		return "", ErrNoRows
	}
	return Header() + "\n" + tupleIndent + strings.Join(tuples, ",\n"+tupleIndent) + ";", nil
}

// Tuples reads every row from r and formats the admitted ones in input order.
// Short rows are counted as skipped and otherwise ignored.
func Tuples(r *Reader) (Result, error) {
	var res Result
	for {
		fields, err := r.Read()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("failed to read row %d: %w", res.Read+1, err)
		}
		res.Read++

		rec, ok := NewRecord(fields)
		if !ok {
			res.Skipped++
			continue
		}
		res.Admitted++
		res.Tuples = append(res.Tuples, rec.Tuple())
	}
}

// Convert turns a tab-separated signup export into one INSERT statement.
// It returns ErrNoRows, along with the row counts, when nothing qualified.
func Convert(src io.Reader) (Result, error) {
	res, err := Tuples(NewReader(src))
	if err != nil {
		return res, err
	}
	stmt, err := Statement(res.Tuples)
	if err != nil {
		return res, err
	}
	res.Statement = stmt
	return res, nil
}
