package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferState(t *testing.T) {
	cases := []struct {
		sys0, sys1 RailState
		want       PowerState
	}{
		{RailOn, RailOn, StateOn},
		{RailOff, RailOn, StateSleep0},
		{RailOn, RailOff, StateOff},
		{RailOff, RailOff, StateOff},
	}

	for _, tc := range cases {
		got := InferState(tc.sys0, tc.sys1)
		assert.Equal(t, tc.want, got, "sys0=%s sys1=%s", tc.sys0, tc.sys1)
	}
}

func TestPowerState_Valid(t *testing.T) {
	assert.True(t, StateOff.Valid())
	assert.True(t, StateOn.Valid())
	assert.True(t, StateSleep0.Valid())
	assert.False(t, PowerState(3).Valid())
}

func TestParsePowerState(t *testing.T) {
	for _, s := range []PowerState{StateOff, StateOn, StateSleep0} {
		got, err := ParsePowerState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParsePowerState("hibernate")
	require.ErrorIs(t, err, ErrNotSupported)
}

func TestCompositeState(t *testing.T) {
	cs := NewCompositeState(2, StateOn, StateOn, StateOn)

	assert.Equal(t, uint32(2), cs.Level())
	assert.Equal(t, StateOn, cs.StateAt(0))
	assert.Equal(t, StateOn, cs.StateAt(1))
	assert.Equal(t, StateOn, cs.StateAt(2))
	assert.Equal(t, StateOff, cs.StateAt(3))

	assert.Equal(t, cs, SoCWakeComposite())
}

func TestCompositeState_MixedLevels(t *testing.T) {
	cs := NewCompositeState(3, StateOn, StateSleep0, StateOff, StateOn)

	assert.Equal(t, uint32(3), cs.Level())
	assert.Equal(t, StateOn, cs.StateAt(0))
	assert.Equal(t, StateSleep0, cs.StateAt(1))
	assert.Equal(t, StateOff, cs.StateAt(2))
	assert.Equal(t, StateOn, cs.StateAt(3))
}
