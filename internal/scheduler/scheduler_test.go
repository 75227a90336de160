package scheduler

import (
	"log/slog"
	"testing"

	"github.com/marell/syndimarket/internal/aggregate"
	"github.com/marell/syndimarket/internal/dispatch"
	"github.com/marell/syndimarket/internal/market"
)

func testScheduler(t *testing.T) *Scheduler {
	t.Helper()
	client := market.NewClient("http://127.0.0.1:0", dispatch.New(1))
	agg := aggregate.New(aggregate.Config{}, client, slog.Default())
	return New(agg, slog.Default())
}

func TestRegisterPrewarm(t *testing.T) {
	t.Run("empty spec disables the job", func(t *testing.T) {
		s := testScheduler(t)
		if err := s.RegisterPrewarm(""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.cron.Entries()) != 0 {
			t.Errorf("entries = %d, want 0", len(s.cron.Entries()))
		}
	})

	t.Run("valid spec registers", func(t *testing.T) {
		s := testScheduler(t)
		if err := s.RegisterPrewarm("*/25 * * * *"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.cron.Entries()) != 1 {
			t.Errorf("entries = %d, want 1", len(s.cron.Entries()))
		}
	})

	t.Run("invalid spec rejected", func(t *testing.T) {
		s := testScheduler(t)
		if err := s.RegisterPrewarm("not a cron line"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestStartStop(t *testing.T) {
	s := testScheduler(t)
	if err := s.RegisterPrewarm("0 3 * * *"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Start()
	s.Stop()
}
