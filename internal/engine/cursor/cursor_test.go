package cursor

import "testing"

func TestSelectionBasics(t *testing.T) {
	sel := NewSelection(5, 10)

	if sel.IsEmpty() {
		t.Error("selection with extent reported empty")
	}
	if !sel.IsForward() {
		t.Error("forward selection reported backward")
	}
	if got := sel.Start(); got != 5 {
		t.Errorf("Start() = %d, want 5", got)
	}
	if got := sel.End(); got != 10 {
		t.Errorf("End() = %d, want 10", got)
	}
	if r := sel.Range(); r.Start != 5 || r.End != 10 {
		t.Errorf("Range() = %v", r)
	}

	back := NewSelection(10, 5)
	if back.IsForward() {
		t.Error("backward selection reported forward")
	}
	if r := back.Range(); r.Start != 5 || r.End != 10 {
		t.Errorf("backward Range() = %v", r)
	}
}

func TestSelectionMoveExtendCollapse(t *testing.T) {
	sel := NewCursorSelection(3)
	if !sel.IsEmpty() {
		t.Error("cursor selection should be empty")
	}

	ext := sel.Extend(8)
	if ext.Anchor != 3 || ext.Head != 8 {
		t.Errorf("Extend(8) = %v", ext)
	}

	moved := ext.MoveTo(1)
	if !moved.IsEmpty() || moved.Head != 1 {
		t.Errorf("MoveTo(1) = %v", moved)
	}

	collapsed := ext.Collapse()
	if !collapsed.IsEmpty() || collapsed.Head != 8 {
		t.Errorf("Collapse() = %v", collapsed)
	}
}

func TestSelectionClamp(t *testing.T) {
	sel := NewSelection(-4, 100)
	clamped := sel.Clamp(10)
	if clamped.Anchor != 0 || clamped.Head != 10 {
		t.Errorf("Clamp(10) = %v", clamped)
	}
}

func TestSetPrimaryAndSecondaries(t *testing.T) {
	set := NewSetAt(0)

	if set.Count() != 1 || set.IsMulti() {
		t.Fatalf("new set: count %d, multi %v", set.Count(), set.IsMulti())
	}

	set.Add(NewCursorSelection(10))
	set.Add(NewCursorSelection(20))
	if set.Count() != 3 || !set.IsMulti() {
		t.Fatalf("after add: count %d", set.Count())
	}

	set.SetPrimary(NewCursorSelection(5))
	if got := set.Primary(); got.Head != 5 {
		t.Errorf("Primary() = %v", got)
	}

	set.Clear()
	if set.Count() != 1 {
		t.Errorf("Clear() left %d selections", set.Count())
	}
	if got := set.Primary(); got.Head != 5 {
		t.Errorf("Clear() dropped primary: %v", got)
	}
}

func TestSetHasSelection(t *testing.T) {
	set := NewSetAt(4)
	if set.HasSelection() {
		t.Error("bare cursor reported a selection")
	}

	set.Add(NewSelection(7, 12))
	if !set.HasSelection() {
		t.Error("selection with extent not reported")
	}
}

func TestSetMapInPlace(t *testing.T) {
	set := NewSetAt(1)
	set.Add(NewCursorSelection(2))

	set.MapInPlace(func(sel Selection) Selection {
		return sel.MoveTo(sel.Head * 10)
	})

	all := set.All()
	if all[0].Head != 10 || all[1].Head != 20 {
		t.Errorf("MapInPlace results = %v", all)
	}
}

func TestSetClamp(t *testing.T) {
	set := NewSetAt(50)
	set.Add(NewSelection(-3, 40))

	set.Clamp(30)

	all := set.All()
	if all[0].Head != 30 {
		t.Errorf("primary not clamped: %v", all[0])
	}
	if all[1].Anchor != 0 || all[1].Head != 30 {
		t.Errorf("secondary not clamped: %v", all[1])
	}
}
