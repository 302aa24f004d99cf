package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testState string

const (
	statePending   testState = "Pending"
	stateSubmitted testState = "Submitted"
	stateCanceled  testState = "Canceled"
	stateDone      testState = "Done"
)

func TestCanTransition(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		machine := New[testState](statePending,
			From(statePending).To(stateSubmitted),
			From(stateSubmitted).To(stateDone, stateCanceled),
		)

		err := machine.CanTransition(stateSubmitted)
		assert.Equal(t, statePending, machine.Current())
		assert.Nil(t, err)
	})

	t.Run("invalid transition", func(t *testing.T) {
		machine := New[testState](stateSubmitted,
			From(statePending).To(stateSubmitted),
			From(stateSubmitted).To(stateDone, stateCanceled),
		)

		err := machine.CanTransition(statePending)
		assert.Equal(t, stateSubmitted, machine.Current())
		assert.Equal(t, ErrInvalidTransition, err)
	})
}

func TestTransition(t *testing.T) {
	machine := New[testState](statePending,
		From(statePending).To(stateSubmitted),
		From(stateSubmitted).To(stateDone, stateCanceled),
	)

	err := machine.Transition(stateSubmitted)
	assert.Nil(t, err)
	assert.Equal(t, stateSubmitted, machine.Current())

	err = machine.Transition(statePending)
	assert.Equal(t, ErrInvalidTransition, err)
	assert.Equal(t, stateSubmitted, machine.Current())

	err = machine.Transition(stateDone)
	assert.Nil(t, err)
	assert.Equal(t, stateDone, machine.Current())
}
