package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProgram is a fake implementation of teaProgramProvider. It collects all
// messages sent via its Send method.
type fakeProgram struct {
	msgs chan tea.Msg
}

func newFakeProgram() *fakeProgram {
	return &fakeProgram{
		msgs: make(chan tea.Msg, 100),
	}
}

func (fp *fakeProgram) Send(msg tea.Msg) {
	fp.msgs <- msg
}

// TestTeaLogWriter_Write_Table verifies that calls to Write send the expected
// messages.
func TestTeaLogWriter_Write_Table(t *testing.T) {
	t.Parallel()

	fp := newFakeProgram()
	writer := NewTeaLogWriter(fp)
	defer writer.Stop()

	testCases := []struct {
		name  string
		input string
	}{
		{"Success_EmptyMessage", ""},
		{"Success_ShortMessage", "log"},
		{"Success_LongMessage", "this is a longer log message"},
		{"Success_UnicodeMessage", "this is a Japanese message - 日本!"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := writer.Write([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, len(tc.input), n)

			select {
			case msg := <-fp.msgs:
				logMsg, ok := msg.(LogMsg)
				require.True(t, ok, "expected a LogMsg")
				assert.Equal(t, tc.input, string(logMsg))
			case <-time.After(time.Second):
				t.Fatal("timed out waiting for log message")
			}
		})
	}
}

// TestTeaLogWriter_Stop verifies that writes after Stop are discarded without
// blocking.
func TestTeaLogWriter_Stop(t *testing.T) {
	t.Parallel()

	fp := newFakeProgram()
	writer := NewTeaLogWriter(fp)
	writer.Stop()

	n, err := writer.Write([]byte("late log"))
	require.NoError(t, err)
	assert.Equal(t, len("late log"), n)
}
