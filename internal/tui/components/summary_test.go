package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummaryView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data SummaryData
		want string
	}{
		{name: "listing", data: SummaryData{Shown: 30}, want: "30 products"},
		{name: "loading listing", data: SummaryData{Loading: true}, want: "Loading products..."},
		{name: "searching", data: SummaryData{Query: "phone", Loading: true}, want: `Searching for "phone"...`},
		{name: "one result", data: SummaryData{Query: "phone", Shown: 1}, want: `1 result for "phone"`},
		{name: "many results", data: SummaryData{Query: "phone", Shown: 4}, want: `4 results for "phone"`},
		{name: "no results", data: SummaryData{Query: "zzz"}, want: `0 results for "zzz"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, NewSummary(tt.data).View())
		})
	}
}
