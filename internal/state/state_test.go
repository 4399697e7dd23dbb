package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minatsilvester/hedwig/internal/executor"
	"github.com/minatsilvester/hedwig/internal/types"
)

func sampleRequests(n int) []types.Request {
	names := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	reqs := make([]types.Request, n)
	for i := range reqs {
		reqs[i] = types.Request{Name: names[i%len(names)], URL: "http://localhost/" + names[i%len(names)], Method: "GET"}
	}
	return reqs
}

func TestNew(t *testing.T) {
	s := New()

	assert.Equal(t, types.ScreenMain, s.Screen())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.Selected())
	assert.Equal(t, types.NewRequestForm(), s.Form())

	_, ok := s.SelectedRequest()
	assert.False(t, ok)

	_, pending := s.Pending()
	assert.False(t, pending)
}

func TestRequestsReturnsCopy(t *testing.T) {
	s := New(sampleRequests(2)...)

	reqs := s.Requests()
	reqs[0].Name = "changed"

	assert.Equal(t, "alpha", s.Requests()[0].Name)
}

func TestSelectNext_FullCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			s := New(sampleRequests(n)...)
			for i := 0; i < start; i++ {
				s.SelectNext()
			}
			require.Equal(t, start, s.Selected())

			for i := 0; i < n; i++ {
				s.SelectNext()
				assert.True(t, s.Selected() >= 0 && s.Selected() < n)
			}
			assert.Equal(t, start, s.Selected(), "n=%d start=%d", n, start)
		}
	}
}

func TestSelectPrevious_FullCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 5; n++ {
		s := New(sampleRequests(n)...)
		s.SelectNext()
		start := s.Selected()

		for i := 0; i < n; i++ {
			s.SelectPrevious()
			assert.True(t, s.Selected() >= 0 && s.Selected() < n)
		}
		assert.Equal(t, start, s.Selected(), "n=%d", n)
	}
}

func TestSelect_Wraparound(t *testing.T) {
	s := New(sampleRequests(3)...)
	s.SelectNext()
	s.SelectNext()
	require.Equal(t, 2, s.Selected())

	s.SelectNext()
	assert.Equal(t, 0, s.Selected())

	s.SelectPrevious()
	assert.Equal(t, 2, s.Selected())
}

func TestSelect_EmptyListIsNoOp(t *testing.T) {
	s := New()

	s.SelectNext()
	assert.Equal(t, 0, s.Selected())

	s.SelectPrevious()
	assert.Equal(t, 0, s.Selected())
}

func TestCompleteSend(t *testing.T) {
	t.Run("success stores body on that request only", func(t *testing.T) {
		s := New(sampleRequests(3)...)

		s.CompleteSend(1, "pong", nil)

		reqs := s.Requests()
		require.True(t, reqs[1].HasResponse())
		assert.Equal(t, "pong", reqs[1].ResponseText())
		assert.False(t, reqs[0].HasResponse())
		assert.False(t, reqs[2].HasResponse())
	})

	t.Run("failure stores non-empty error text", func(t *testing.T) {
		s := New(sampleRequests(1)...)
		s.CompleteSend(0, "", errors.New("connection refused"))

		got := s.Requests()[0].ResponseText()
		assert.Equal(t, "Error: connection refused", got)
	})

	t.Run("failure overwrites prior response", func(t *testing.T) {
		s := New(sampleRequests(1)...)
		s.CompleteSend(0, "pong", nil)
		s.CompleteSend(0, "", errors.New("timeout"))

		got := s.Requests()[0].ResponseText()
		assert.NotEqual(t, "pong", got)
		assert.NotEmpty(t, got)
	})

	t.Run("out of range index ignored", func(t *testing.T) {
		s := New(sampleRequests(1)...)
		s.CompleteSend(5, "pong", nil)
		s.CompleteSend(-1, "pong", nil)

		assert.False(t, s.Requests()[0].HasResponse())
	})
}

func TestSend(t *testing.T) {
	t.Run("executes selected request", func(t *testing.T) {
		s := New(sampleRequests(3)...)
		s.SelectNext()

		var gotMethod, gotURL string
		exec := executor.Func(func(ctx context.Context, method, url string) (string, error) {
			gotMethod, gotURL = method, url
			return "pong", nil
		})

		require.True(t, s.Send(context.Background(), exec))
		assert.Equal(t, "GET", gotMethod)
		assert.Equal(t, "http://localhost/beta", gotURL)
		assert.Equal(t, "pong", s.Requests()[1].ResponseText())

		_, pending := s.Pending()
		assert.False(t, pending)
	})

	t.Run("empty list sends nothing", func(t *testing.T) {
		s := New()
		called := false
		exec := executor.Func(func(ctx context.Context, method, url string) (string, error) {
			called = true
			return "", nil
		})

		assert.False(t, s.Send(context.Background(), exec))
		assert.False(t, called)
	})
}

func TestResponseText(t *testing.T) {
	assert.Equal(t, "body", ResponseText("body", nil))
	assert.Equal(t, "", ResponseText("", nil))
	assert.Equal(t, "Error: boom", ResponseText("ignored", errors.New("boom")))
}
