package sendlog_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ergohq/mailroom/pkg/sendlog"
)

func TestLedger_Status(t *testing.T) {
	t.Parallel()

	t.Run("empty ledger allows sending", func(t *testing.T) {
		t.Parallel()
		ledger := sendlog.New()

		status := ledger.Status()
		assert.True(t, status.CanSend)
		assert.Equal(t, 0, status.SentLastHour)
		assert.Equal(t, 0, status.SentLastDay)
		assert.Equal(t, sendlog.DefaultHourlyLimit, status.HourlyLimit)
		assert.Equal(t, sendlog.DefaultDailyLimit, status.DailyLimit)
		assert.Nil(t, status.NextAvailableAt)
	})

	t.Run("counts recorded sends in both windows", func(t *testing.T) {
		t.Parallel()
		ledger := sendlog.New()

		for range 5 {
			ledger.RecordSent("user@example.com")
		}

		status := ledger.Status()
		assert.Equal(t, 5, status.SentLastHour)
		assert.Equal(t, 5, status.SentLastDay)
		assert.True(t, status.CanSend)
	})

	t.Run("send reaching the hourly limit is the last one admitted", func(t *testing.T) {
		t.Parallel()
		ledger := sendlog.New(sendlog.WithHourlyLimit(3))

		ledger.RecordSent("a@example.com")
		ledger.RecordSent("b@example.com")
		assert.True(t, ledger.Status().CanSend, "one slot left")

		ledger.RecordSent("c@example.com")
		status := ledger.Status()
		assert.Equal(t, 3, status.SentLastHour)
		assert.False(t, status.CanSend)
	})

	t.Run("hourly next-available is oldest in-window send plus an hour", func(t *testing.T) {
		t.Parallel()
		ledger := sendlog.New(sendlog.WithHourlyLimit(2))

		start := time.Now()
		ledger.RecordSent("a@example.com")
		ledger.RecordSent("b@example.com")

		status := ledger.Status()
		require.False(t, status.CanSend)
		require.NotNil(t, status.NextAvailableAt)
		assert.WithinDuration(t, start.Add(time.Hour), *status.NextAvailableAt, 2*time.Second)
	})

	t.Run("daily constraint binds when hourly is clear", func(t *testing.T) {
		t.Parallel()
		ledger := sendlog.New(
			sendlog.WithHourlyLimit(10),
			sendlog.WithDailyLimit(2),
		)

		start := time.Now()
		ledger.RecordSent("a@example.com")
		ledger.RecordSent("b@example.com")

		status := ledger.Status()
		require.False(t, status.CanSend)
		require.NotNil(t, status.NextAvailableAt)
		assert.WithinDuration(t, start.Add(24*time.Hour), *status.NextAvailableAt, 2*time.Second)
	})

	t.Run("with both windows violated the later relax time wins", func(t *testing.T) {
		t.Parallel()
		ledger := sendlog.New(
			sendlog.WithHourlyLimit(2),
			sendlog.WithDailyLimit(2),
		)

		start := time.Now()
		ledger.RecordSent("a@example.com")
		ledger.RecordSent("b@example.com")

		status := ledger.Status()
		require.False(t, status.CanSend)
		require.NotNil(t, status.NextAvailableAt)
		assert.WithinDuration(t, start.Add(24*time.Hour), *status.NextAvailableAt, 2*time.Second)
	})
}

func TestLedger_CanSendNow(t *testing.T) {
	t.Parallel()

	ledger := sendlog.New(sendlog.WithHourlyLimit(2))

	assert.True(t, ledger.CanSendNow())
	ledger.RecordSent("a@example.com")
	assert.True(t, ledger.CanSendNow())
	ledger.RecordSent("b@example.com")
	assert.False(t, ledger.CanSendNow())

	assert.Equal(t, ledger.Status().CanSend, ledger.CanSendNow())
}

func TestLedger_Clear(t *testing.T) {
	t.Parallel()

	ledger := sendlog.New(sendlog.WithHourlyLimit(1))
	ledger.RecordSent("a@example.com")
	require.False(t, ledger.CanSendNow())

	ledger.Clear()

	status := ledger.Status()
	assert.True(t, status.CanSend)
	assert.Equal(t, 0, status.SentLastHour)
	assert.Empty(t, ledger.History())
}

func TestLedger_History(t *testing.T) {
	t.Parallel()

	t.Run("returns records oldest first", func(t *testing.T) {
		t.Parallel()
		ledger := sendlog.New()

		ledger.RecordSent("first@example.com")
		ledger.RecordSent("second@example.com")

		history := ledger.History()
		require.Len(t, history, 2)
		assert.Equal(t, "first@example.com", history[0].Recipient)
		assert.Equal(t, "second@example.com", history[1].Recipient)
		assert.False(t, history[1].SentAt.Before(history[0].SentAt))
	})

	t.Run("is a defensive copy", func(t *testing.T) {
		t.Parallel()
		ledger := sendlog.New()
		ledger.RecordSent("a@example.com")

		history := ledger.History()
		history[0].Recipient = "tampered@example.com"

		assert.Equal(t, "a@example.com", ledger.History()[0].Recipient)
	})
}

func TestLedger_ConcurrentRecording(t *testing.T) {
	t.Parallel()

	ledger := sendlog.New(
		sendlog.WithHourlyLimit(1000),
		sendlog.WithDailyLimit(10000),
	)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			ledger.RecordSent("load@example.com")
		}()
	}
	wg.Wait()

	status := ledger.Status()
	assert.Equal(t, workers, status.SentLastHour)
	assert.Equal(t, workers, status.SentLastDay)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies configured limits", func(t *testing.T) {
		t.Parallel()
		ledger := sendlog.NewFromConfig(sendlog.Config{HourlyLimit: 2, DailyLimit: 5})

		status := ledger.Status()
		assert.Equal(t, 2, status.HourlyLimit)
		assert.Equal(t, 5, status.DailyLimit)
	})

	t.Run("zero values fall back to defaults", func(t *testing.T) {
		t.Parallel()
		ledger := sendlog.NewFromConfig(sendlog.Config{})

		status := ledger.Status()
		assert.Equal(t, sendlog.DefaultHourlyLimit, status.HourlyLimit)
		assert.Equal(t, sendlog.DefaultDailyLimit, status.DailyLimit)
	})
}
