package services

import (
	"delivery-dispatch-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortByPriority(t *testing.T) {
	in := domain.IndexClients([]domain.Client{
		client(0, 0, 1, 3),
		client(0, 0, 1, 10),
		client(0, 0, 1, 3),
		client(0, 0, 1, 7),
		client(0, 0, 1, 10),
	})

	out := SortByPriority(in)

	got := make([]int, 0, len(out))
	for _, c := range out {
		got = append(got, c.Index)
	}
	require.Equal(t, []int{1, 4, 3, 0, 2}, got)

	// input left untouched
	for i, c := range in {
		require.Equal(t, i, c.Index)
	}

	require.Empty(t, SortByPriority(nil))
}
