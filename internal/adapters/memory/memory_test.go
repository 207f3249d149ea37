package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
)

var railID = domain.NewElementID("ppu", "sys0")

func TestRailBank(t *testing.T) {
	bank := NewRailBank(railID)

	state, err := bank.GetState(railID)
	require.NoError(t, err)
	assert.Equal(t, domain.RailOff, state)

	require.NoError(t, bank.SetState(railID, domain.RailOn))
	state, err = bank.GetState(railID)
	require.NoError(t, err)
	assert.Equal(t, domain.RailOn, state)

	assert.Equal(t, []Command{{ID: railID, State: domain.RailOn}}, bank.Journal())

	t.Run("seed bypasses journal", func(t *testing.T) {
		bank.ClearJournal()
		bank.Seed(railID, domain.RailOff)
		assert.Empty(t, bank.Journal())
	})

	t.Run("unknown rail", func(t *testing.T) {
		unknown := domain.NewElementID("ppu", "ghost")
		require.Error(t, bank.SetState(unknown, domain.RailOn))
		_, err := bank.GetState(unknown)
		require.Error(t, err)
	})

	t.Run("programmed faults", func(t *testing.T) {
		boom := errors.New("boom")
		bank.FailSetState(railID, boom)
		require.ErrorIs(t, bank.SetState(railID, domain.RailOn), boom)
		bank.FailSetState(railID, nil)
		require.NoError(t, bank.SetState(railID, domain.RailOn))

		bank.FailGetState(railID, boom)
		_, err := bank.GetState(railID)
		require.ErrorIs(t, err, boom)
		bank.FailGetState(railID, nil)
	})
}

func TestInterruptLine(t *testing.T) {
	line := NewInterruptLine()
	fired := 0
	require.NoError(t, line.SetHandler(func() { fired++ }))

	t.Run("disabled line latches pending", func(t *testing.T) {
		line.Fire()
		assert.True(t, line.Pending())
		assert.Zero(t, fired)
	})

	t.Run("enable delivers pending", func(t *testing.T) {
		line.Enable()
		assert.False(t, line.Pending())
		assert.Equal(t, 1, fired)
	})

	t.Run("enabled line fires immediately", func(t *testing.T) {
		line.Fire()
		assert.Equal(t, 2, fired)
		assert.Equal(t, 2, line.Fired())
	})

	t.Run("clear pending suppresses delivery", func(t *testing.T) {
		line.Disable()
		line.Fire()
		line.ClearPending()
		line.Enable()
		assert.Equal(t, 2, fired)
	})
}

func TestOrchestratorRecorder(t *testing.T) {
	orch := NewOrchestrator()
	pd := domain.NewElementID("power-domain", "soc")

	require.NoError(t, orch.SetCompositeStateAsync(pd, false, domain.SoCWakeComposite()))
	require.NoError(t, orch.ReportPowerStateTransition(pd, domain.StateOn))

	require.Len(t, orch.WakeRequests(), 1)
	require.Len(t, orch.Reports(), 1)

	boom := errors.New("boom")
	orch.FailAsync(boom)
	orch.FailReport(boom)
	require.ErrorIs(t, orch.SetCompositeStateAsync(pd, false, 0), boom)
	require.ErrorIs(t, orch.ReportPowerStateTransition(pd, domain.StateOff), boom)
}
