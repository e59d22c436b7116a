package load

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	// 10 kW at usage factor 0.6 on the 220 V bus
	assert.InDelta(t, 10*1000*0.6/220, Current(10, 0.6), 1e-9)
	assert.InDelta(t, 27.27, Current(10, 0.6), 0.01)
	assert.Equal(t, 0.0, Current(0, 1))
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name    string
		load    string
		power   float64
		factor  float64
		wantErr error
	}{
		{"missing name", "", 10, 0.6, ErrMissingName},
		{"negative power", "x", -1, 0.6, ErrInvalidInput},
		{"nan power", "x", math.NaN(), 0.6, ErrInvalidInput},
		{"inf power", "x", math.Inf(1), 0.6, ErrInvalidInput},
		{"factor above one", "x", 10, 1.5, ErrInvalidInput},
		{"negative factor", "x", 10, -0.1, ErrInvalidInput},
		{"nan factor", "x", 10, math.NaN(), ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.load, tc.power, tc.factor, Stages{})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewDerivesCurrent(t *testing.T) {
	l, err := New("UPS supply", 15, 0.6, Stages{Initial: true, HalfHour: true})
	require.NoError(t, err)
	assert.InDelta(t, 40.909, l.Current, 0.001)
	assert.True(t, l.Stages.Initial)
	assert.False(t, l.Stages.Random)
}

func TestSetTotalsPerCategory(t *testing.T) {
	set := NewSet()

	a, err := New("a", 10, 0.6, Stages{Frequent: true, Initial: true})
	require.NoError(t, err)
	b, err := New("b", 3.6, 0.6, Stages{Initial: true})
	require.NoError(t, err)
	c, err := New("c", 1.8, 1, Stages{Random: true})
	require.NoError(t, err)

	set.Add(a)
	totals := set.Totals()
	assert.InDelta(t, a.Current, totals.Frequent, 1e-9)
	assert.InDelta(t, a.Current, totals.Initial, 1e-9)
	assert.Equal(t, 0.0, totals.HalfHour)
	assert.Equal(t, 0.0, totals.Random)

	// Adding a load only increases the totals of its tagged categories.
	set.Add(b)
	totals = set.Totals()
	assert.InDelta(t, a.Current, totals.Frequent, 1e-9)
	assert.InDelta(t, a.Current+b.Current, totals.Initial, 1e-9)

	set.Add(c)
	totals = set.Totals()
	assert.InDelta(t, c.Current, totals.Random, 1e-9)
	assert.InDelta(t, a.Current, totals.Frequent, 1e-9)
}

func TestSetTotalsOrderIndependent(t *testing.T) {
	mk := func(name string, p, f float64, s Stages) Load {
		l, err := New(name, p, f, s)
		if err != nil {
			t.Fatalf("new load: %v", err)
		}
		return l
	}
	loads := []Load{
		mk("a", 10, 0.6, Stages{Frequent: true, Initial: true, HalfHour: true}),
		mk("b", 15, 0.6, Stages{Initial: true, HalfHour: true, OneHour: true}),
		mk("c", 3, 1, Stages{Random: true}),
		mk("d", 3, 0.8, Stages{FourHour: true}),
	}

	forward := NewSet()
	for _, l := range loads {
		forward.Add(l)
	}
	backward := NewSet()
	for i := len(loads) - 1; i >= 0; i-- {
		backward.Add(loads[i])
	}

	assert.Equal(t, forward.Totals(), backward.Totals())
}

func TestSetClear(t *testing.T) {
	set := NewSet()
	l, err := New("a", 10, 0.6, Stages{Initial: true})
	require.NoError(t, err)
	set.Add(l)
	require.Equal(t, 1, set.Len())

	set.Clear()
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, StageTotals{}, set.Totals())
}

func TestSetLoadsReturnsCopy(t *testing.T) {
	set := NewSet()
	l, err := New("a", 10, 0.6, Stages{})
	require.NoError(t, err)
	set.Add(l)

	got := set.Loads()
	got[0].Name = "mutated"
	assert.Equal(t, "a", set.Loads()[0].Name)
}

func TestStageTotalsMonotonic(t *testing.T) {
	assert.True(t, StageTotals{Initial: 1, HalfHour: 2, OneHour: 3, TwoHour: 4, FourHour: 5}.Monotonic())
	assert.True(t, StageTotals{}.Monotonic())
	// A load tagged for an earlier stage but not a later one.
	assert.False(t, StageTotals{Initial: 5, HalfHour: 2, OneHour: 3, TwoHour: 4, FourHour: 5}.Monotonic())
	assert.False(t, StageTotals{Initial: 1, HalfHour: 2, OneHour: 3, TwoHour: 4, FourHour: 0}.Monotonic())
}
