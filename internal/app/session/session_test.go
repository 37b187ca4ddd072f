package session

import "testing"

func TestSelectSemester(t *testing.T) {
	s := New()
	if s.SelectedSemesterID() != nil {
		t.Fatal("new session should have no selection")
	}

	id := "sem-1"
	s.SelectSemester(&id)
	if got := s.SelectedSemesterID(); got == nil || *got != "sem-1" {
		t.Fatalf("expected sem-1 selected, got %v", got)
	}

	s.SelectSemester(nil)
	if s.SelectedSemesterID() != nil {
		t.Fatal("expected selection reset")
	}
}

func TestInvalidateBumpsRevisionAndNotifies(t *testing.T) {
	s := New()
	calls := 0
	s.OnChange(func() { calls++ })

	before := s.Revision()
	s.Invalidate()
	s.Invalidate()

	if got := s.Revision(); got != before+2 {
		t.Errorf("expected revision %d, got %d", before+2, got)
	}
	if calls != 2 {
		t.Errorf("expected 2 notifications, got %d", calls)
	}
}

func TestNotifySnapshotsListeners(t *testing.T) {
	s := New()
	s.Invalidate() // no listeners registered yet

	var order []int
	s.OnChange(func() { order = append(order, 1) })
	s.OnChange(func() { order = append(order, 2) })

	s.Invalidate()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected listeners [1 2] invoked in order, got %v", order)
	}
}

func TestSelectionChangeNotifies(t *testing.T) {
	s := New()
	calls := 0
	s.OnChange(func() { calls++ })

	id := AllSemestersID
	s.SelectSemester(&id)
	if calls != 1 {
		t.Errorf("expected notification on selection change, got %d", calls)
	}
}
