package game

import "testing"

func TestEventQueueDrainOrder(t *testing.T) {
	q := NewEventQueue()
	q.Emit(Event{Type: EventEnemyKilled, Data: 1})
	q.Emit(Event{Type: EventPlayerHit, Data: 2})
	q.Emit(Event{Type: EventWaveCleared, Data: 3})

	var got []int
	q.Drain(func(e Event) { got = append(got, e.Data) })

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("drain order = %v, want [1 2 3]", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len = %d after drain, want 0", q.Len())
	}
}

func TestEventQueueEmitDuringDrain(t *testing.T) {
	q := NewEventQueue()
	q.Emit(Event{Type: EventEnemyKilled})

	var first, second int
	q.Drain(func(e Event) {
		first++
		// A cascade emitted mid-drain lands in the next drain, never this one.
		if first == 1 {
			q.Emit(Event{Type: EventWaveCleared})
		}
	})
	if first != 1 {
		t.Fatalf("first drain delivered %d events, want 1", first)
	}

	q.Drain(func(e Event) {
		second++
		if e.Type != EventWaveCleared {
			t.Errorf("second drain type = %v, want EventWaveCleared", e.Type)
		}
	})
	if second != 1 {
		t.Fatalf("second drain delivered %d events, want 1", second)
	}
}

func TestSessionStateCommittedBeforeNotify(t *testing.T) {
	q := NewEventQueue()
	s := NewGameSession(q)

	s.SetState(StatePlaying)

	seen := false
	q.Drain(func(e Event) {
		seen = true
		if e.Type != EventStateChanged || e.Data != int(StatePlaying) {
			t.Errorf("event = %+v, want state change to playing", e)
		}
		// The transition is already committed by the time listeners run.
		if s.State != StatePlaying {
			t.Errorf("observed state %v mid-drain, want committed StatePlaying", s.State)
		}
	})
	if !seen {
		t.Fatal("no state change event delivered")
	}

	// Re-entering the same state is silent.
	s.SetState(StatePlaying)
	if q.Len() != 0 {
		t.Errorf("Len = %d after same-state SetState, want 0", q.Len())
	}
}

func TestSessionScoreTracksHiScore(t *testing.T) {
	s := NewGameSession(NewEventQueue())
	s.AddScore(30)
	s.AddScore(20)
	if s.Score != 50 || s.HiScore != 50 {
		t.Errorf("score/hiscore = %d/%d, want 50/50", s.Score, s.HiScore)
	}

	s.Score = 0
	s.AddScore(10)
	if s.HiScore != 50 {
		t.Errorf("hiscore = %d after a worse run, want 50", s.HiScore)
	}
}
