package reactive

import "testing"

func TestSignalGetSet(t *testing.T) {
	s := NewSignal(10)

	if got := s.Get(); got != 10 {
		t.Errorf("Get() = %d, want 10", got)
	}

	s.Set(20)
	if got := s.Get(); got != 20 {
		t.Errorf("Get() = %d, want 20", got)
	}
}

func TestSignalUpdate(t *testing.T) {
	s := NewSignal(5)
	s.Update(func(n int) int { return n * 2 })

	if got := s.Get(); got != 10 {
		t.Errorf("Get() = %d, want 10", got)
	}
}

func TestSignalEffectReruns(t *testing.T) {
	s := NewSignal(1)
	runs := 0

	NewEffect(func() Cleanup {
		_ = s.Get()
		runs++
		return nil
	})

	if runs != 1 {
		t.Fatalf("runs = %d after creation, want 1", runs)
	}

	s.Set(2)
	if runs != 2 {
		t.Errorf("runs = %d after set, want 2", runs)
	}
}

func TestSignalUnchangedWriteDoesNotNotify(t *testing.T) {
	s := NewSignal("a")
	runs := 0

	NewEffect(func() Cleanup {
		_ = s.Get()
		runs++
		return nil
	})

	s.Set("a")
	if runs != 1 {
		t.Errorf("runs = %d, want 1 (no-op write must not notify)", runs)
	}
}

func TestSignalPeekDoesNotSubscribe(t *testing.T) {
	s := NewSignal(1)
	runs := 0

	NewEffect(func() Cleanup {
		_ = s.Peek()
		runs++
		return nil
	})

	s.Set(2)
	if runs != 1 {
		t.Errorf("runs = %d, want 1 (Peek must not subscribe)", runs)
	}
}

func TestSignalWithEquals(t *testing.T) {
	// Treat values within 10 of each other as equal.
	s := NewSignal(100).WithEquals(func(a, b int) bool {
		d := a - b
		if d < 0 {
			d = -d
		}
		return d < 10
	})
	runs := 0

	NewEffect(func() Cleanup {
		_ = s.Get()
		runs++
		return nil
	})

	s.Set(105)
	if runs != 1 {
		t.Errorf("runs = %d, want 1 (within tolerance)", runs)
	}

	s.Set(200)
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestMemoCachesUntilInvalidated(t *testing.T) {
	s := NewSignal(2)
	computes := 0

	m := NewMemo(func() int {
		computes++
		return s.Get() * 2
	})

	if got := m.Get(); got != 4 {
		t.Errorf("Get() = %d, want 4", got)
	}
	_ = m.Get()
	if computes != 1 {
		t.Errorf("computes = %d, want 1 (cached)", computes)
	}

	s.Set(3)
	if got := m.Get(); got != 6 {
		t.Errorf("Get() = %d, want 6", got)
	}
	if computes != 2 {
		t.Errorf("computes = %d, want 2", computes)
	}
}

func TestMemoNotifiesEffects(t *testing.T) {
	s := NewSignal(1)
	m := NewMemo(func() int { return s.Get() + 1 })
	var seen []int

	NewEffect(func() Cleanup {
		seen = append(seen, m.Get())
		return nil
	})

	s.Set(5)

	if len(seen) != 2 || seen[0] != 2 || seen[1] != 6 {
		t.Errorf("seen = %v, want [2 6]", seen)
	}
}

func TestUntracked(t *testing.T) {
	s := NewSignal(1)
	runs := 0

	NewEffect(func() Cleanup {
		Untracked(func() { _ = s.Get() })
		runs++
		return nil
	})

	s.Set(2)
	if runs != 1 {
		t.Errorf("runs = %d, want 1 (untracked read must not subscribe)", runs)
	}
}
