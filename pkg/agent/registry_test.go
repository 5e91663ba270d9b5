package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRejectsDuplicateName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newStub("a", []Task{TaskGenerate}, 10, nil, false)))

	err := reg.Register(newStub("a", []Task{TaskEdit}, 20, nil, false))
	assert.ErrorIs(t, err, ErrDuplicateAgent)
}

func TestRegistryRejectsSameTaskSamePriority(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newStub("a", []Task{TaskGenerate}, 10, nil, false)))

	err := reg.Register(newStub("b", []Task{TaskGenerate}, 10, nil, false))
	assert.ErrorIs(t, err, ErrPriorityOverlap)

	// Same priority on a different task is fine.
	require.NoError(t, reg.Register(newStub("c", []Task{TaskEdit}, 10, nil, false)))
	// Same task at a different priority is fine.
	require.NoError(t, reg.Register(newStub("d", []Task{TaskGenerate}, 11, nil, false)))
}

func TestRegistryEnableRechecksOverlap(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newStub("a", []Task{TaskGenerate}, 10, nil, false)))
	require.NoError(t, reg.Disable("a"))

	// With a disabled, b can take the slot.
	require.NoError(t, reg.Register(newStub("b", []Task{TaskGenerate}, 10, nil, false)))

	err := reg.Enable("a")
	assert.ErrorIs(t, err, ErrPriorityOverlap)

	require.NoError(t, reg.Disable("b"))
	require.NoError(t, reg.Enable("a"))
	assert.True(t, reg.IsEnabled("a"))
}

func TestRegistryForTaskOrdersByPriority(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newStub("late", []Task{TaskGenerate}, 30, nil, false)))
	require.NoError(t, reg.Register(newStub("early", []Task{TaskGenerate}, 10, nil, false)))
	require.NoError(t, reg.Register(newStub("middle", []Task{TaskGenerate}, 20, nil, false)))
	require.NoError(t, reg.Register(newStub("other", []Task{TaskEdit}, 10, nil, false)))
	require.NoError(t, reg.Register(newStub("disabled", []Task{TaskGenerate}, 40, nil, false)))
	require.NoError(t, reg.Disable("disabled"))

	agents := reg.ForTask(TaskGenerate)
	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = a.Name()
	}
	assert.Equal(t, []string{"early", "middle", "late"}, names)
}

func TestRegistryGetAndDisableUnknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("missing")
	assert.ErrorIs(t, err, ErrAgentNotFound)
	assert.ErrorIs(t, reg.Disable("missing"), ErrAgentNotFound)
	assert.ErrorIs(t, reg.Enable("missing"), ErrAgentNotFound)
}

func TestRegisterBuiltins(t *testing.T) {
	cfg := loadTestConfig(t)
	gw, _ := newScriptedGateway(t, `{}`)
	reg := NewRegistry()

	require.NoError(t, RegisterBuiltins(reg, cfg, gw, testPromptBuilder()))
	assert.Equal(t, 7, reg.Len())

	generate := reg.ForTask(TaskGenerate)
	names := make([]string, len(generate))
	for i, a := range generate {
		names[i] = a.Name()
	}
	assert.Equal(t, []string{
		"skeleton-planner", "activity-agent", "meal-agent",
		"transport-agent", "enrichment-agent",
	}, names)

	edit := reg.ForTask(TaskEdit)
	require.Len(t, edit, 2)
	assert.Equal(t, "intent-classifier", edit[0].Name())
	assert.Equal(t, "editor-agent", edit[1].Name())
	assert.True(t, edit[1].Required())
}
