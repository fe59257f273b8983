package labels_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routelab/roadflow/labels"
)

// TestNewLabelSet_Validation verifies constructor rejection of lane counts
// below one and parent-tracking levels off the ladder.
func TestNewLabelSet_Validation(t *testing.T) {
	_, err := labels.NewSequential(0, labels.NoParentInfo)
	require.ErrorIs(t, err, labels.ErrNonPositiveLanes)

	_, err = labels.NewSequential(-3, labels.ParentVertices)
	require.ErrorIs(t, err, labels.ErrNonPositiveLanes)

	_, err = labels.NewParallel(0, labels.NoParentInfo)
	require.ErrorIs(t, err, labels.ErrNonPositiveLanes)

	_, err = labels.NewSequential(2, labels.ParentInfo(99))
	require.ErrorIs(t, err, labels.ErrUnknownParentInfo)

	_, err = labels.NewSequential(2, labels.ParentInfo(-1))
	require.ErrorIs(t, err, labels.ErrUnknownParentInfo)
}

// TestLabelSet_Accessors verifies the configuration a constructed set reports.
func TestLabelSet_Accessors(t *testing.T) {
	seq, err := labels.NewSequential(16, labels.ParentVertices)
	require.NoError(t, err)
	require.Equal(t, 16, seq.K())
	require.False(t, seq.Shared())

	par, err := labels.NewParallel(2, labels.FullParentInfo)
	require.NoError(t, err)
	require.Equal(t, 2, par.K())
	require.True(t, par.Shared())
}

// TestLabelSet_Factories verifies the label shapes a set hands out.
func TestLabelSet_Factories(t *testing.T) {
	set, err := labels.NewSequential(5, labels.NoParentInfo)
	require.NoError(t, err)

	d := set.NewDistance()
	require.Equal(t, 5, d.K())

	filled := set.NewDistanceFilled(labels.Infinity)
	for i := 0; i < 5; i++ {
		require.Equal(t, labels.Infinity, filled.At(i))
	}

	mask := set.MarkLane(3)
	require.Equal(t, 5, mask.K())
	require.True(t, mask.Marks(3))
}
