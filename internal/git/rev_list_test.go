package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitRangeArgs(t *testing.T) {
	tests := []struct {
		name string
		give CommitRange
		want []string
	}{
		{
			name: "From",
			give: CommitRangeFrom("abc"),
			want: []string{"rev-list", "abc"},
		},
		{
			name: "Exclude",
			give: CommitRangeFrom("abc").ExcludeFrom("def"),
			want: []string{"rev-list", "abc", "^def"},
		},
		{
			name: "ReverseTopo",
			give: CommitRangeFrom("abc").ExcludeFrom("def").TopoOrder().Reverse(),
			want: []string{"rev-list", "--topo-order", "--reverse", "abc", "^def"},
		},
		{
			name: "MergesLimit",
			give: CommitRangeFrom("abc").MergesOnly().Limit(1),
			want: []string{"rev-list", "--max-count=1", "--merges", "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.give.args())
		})
	}
}

func TestCommitRange_immutable(t *testing.T) {
	base := CommitRangeFrom("abc").ExcludeFrom("x")
	a := base.ExcludeFrom("y")
	b := base.ExcludeFrom("z")

	assert.Equal(t, []string{"rev-list", "abc", "^x"}, base.args())
	assert.Equal(t, []string{"rev-list", "abc", "^x", "^y"}, a.args())
	assert.Equal(t, []string{"rev-list", "abc", "^x", "^z"}, b.args())
}
