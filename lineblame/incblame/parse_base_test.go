package incblame

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tparse(t *testing.T, data string) Table {
	t.Helper()
	res, err := Parse(tlines(data))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func tlines(data string) []string {
	return strings.Split(strings.TrimPrefix(data, "\n"), "\n")
}

func assertEqualTables(t *testing.T, want, got Table) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tables do not match (-want +got)\n%v\ngot\n%v", diff, got)
	}
}

func rec(commit, author string, authorTime int64, tz, summary string) *Record {
	return &Record{Commit: commit, Author: author, AuthorTime: authorTime, AuthorTZ: tz, Summary: summary}
}
