package signup

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const wantHeader = "INSERT INTO public.submissions (id, created_at, soundcloud_url, round_id, additional_comments, user_id) VALUES"

func TestHeader(t *testing.T) {
	require.Equal(t, wantHeader, Header())
}

func TestStatement(t *testing.T) {
	stmt, err := Statement([]string{"(1)", "(2)", "(3)"})
	require.NoError(t, err)
	require.Equal(t, wantHeader+"\n    (1),\n    (2),\n    (3);", stmt)

	stmt, err = Statement([]string{"(1)"})
	require.NoError(t, err)
	require.Equal(t, wantHeader+"\n    (1);", stmt)

	_, err = Statement(nil)
	require.ErrorIs(t, err, ErrNoRows)
}

func TestConvert_Scenarios(t *testing.T) {
	input := strings.Join([]string{
		"1\t2024-01-01\thttps://sc.com/a\t3\tgreat track\t9",
		"2\t\\N\t\\N\t\\N\tit's ok\t",
	}, "\n") + "\n"

	res, err := Convert(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []string{
		"(1, '2024-01-01', 'https://sc.com/a', 3, 'great track', '9')",
		"(2, NULL, NULL, NULL, 'it''s ok', NULL)",
	}, res.Tuples)
	require.Equal(t, wantHeader+"\n"+
		"    (1, '2024-01-01', 'https://sc.com/a', 3, 'great track', '9'),\n"+
		"    (2, NULL, NULL, NULL, 'it''s ok', NULL);", res.Statement)
}

func TestConvert_ShortRowsExcludedInOrder(t *testing.T) {
	input := strings.Join([]string{
		"1\ta\tb\t1\tc\td",
		"short\trow",
		"2\ta\tb\t1\tc\td",
		"3\ta\tb\t1\tc",
		"4\ta\tb\t1\tc\td\textra\tmore",
	}, "\n")

	res, err := Convert(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 5, res.Read)
	require.Equal(t, 3, res.Admitted)
	require.Equal(t, 2, res.Skipped)
	require.Len(t, res.Tuples, 3)
	require.True(t, strings.HasPrefix(res.Tuples[0], "(1, "))
	require.True(t, strings.HasPrefix(res.Tuples[1], "(2, "))
	require.Equal(t, "(4, 'a', 'b', 1, 'c', 'd')", res.Tuples[2])
}

func TestConvert_QuotedCommentsKeepRowsApart(t *testing.T) {
	input := strings.Join([]string{
		"1\t2024-01-01\thttps://sc.com/a\t3\t\"best\" song ever\tu1",
		"2\t2024-01-02\thttps://sc.com/b\t3\tfine\tu2",
		"3\t2024-01-03\thttps://sc.com/c\t3\t\"quoted whole\"\tu3",
	}, "\n") + "\n"

	res, err := Convert(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, res.Read)
	require.Equal(t, 3, res.Admitted)
	require.Equal(t, []string{
		`(1, '2024-01-01', 'https://sc.com/a', 3, '"best" song ever', 'u1')`,
		"(2, '2024-01-02', 'https://sc.com/b', 3, 'fine', 'u2')",
		`(3, '2024-01-03', 'https://sc.com/c', 3, '"quoted whole"', 'u3')`,
	}, res.Tuples)
}

func TestConvert_NoQualifyingRows(t *testing.T) {
	for _, input := range []string{"", "\n\n", "1\t2\t3\n"} {
		res, err := Convert(strings.NewReader(input))
		require.True(t, errors.Is(err, ErrNoRows), "input %q", input)
		require.Empty(t, res.Statement)
		require.Empty(t, res.Tuples)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestConvert_ReadError(t *testing.T) {
	_, err := Convert(failingReader{})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNoRows))
	require.Contains(t, err.Error(), "disk gone")
}
