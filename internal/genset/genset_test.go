package genset

import "testing"

func TestInsertContains(t *testing.T) {
	s := New(8)
	if s.Contains(3) {
		t.Fatal("fresh set should not contain 3")
	}
	if added := s.Insert(3); !added {
		t.Fatal("first insert of 3 should report added")
	}
	if added := s.Insert(3); added {
		t.Fatal("second insert of 3 should report not added")
	}
	if !s.Contains(3) {
		t.Fatal("set should contain 3 after insert")
	}
}

func TestResetClearsWithoutTouchingOtherGenerations(t *testing.T) {
	s := New(4)
	s.Insert(0)
	s.Insert(1)
	s.Reset()
	for i := 0; i < 4; i++ {
		if s.Contains(i) {
			t.Fatalf("value %d should not survive Reset", i)
		}
	}
	s.Insert(2)
	if !s.Contains(2) {
		t.Fatal("insert after reset should be visible")
	}
	if s.Contains(0) {
		t.Fatal("value from previous generation resurrected")
	}
}

func TestGenerationWrapAround(t *testing.T) {
	s := New(2)
	s.gen = ^uint32(0) // force the next Reset to wrap
	s.stamps[0] = ^uint32(0)
	s.Reset()
	if s.Contains(0) {
		t.Fatal("wraparound must not resurrect a stamp from the old max generation")
	}
}
