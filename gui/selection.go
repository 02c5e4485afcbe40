package gui

// Selection is one queued menu event: which control fired and which input
// channel fired it. Values are immutable once queued.
type Selection struct {
	ButtonID   ButtonID
	Controller ControllerID
}

// NoSelection is returned by GetRecentSelection when nothing is queued.
var NoSelection = Selection{ButtonID: ButtonUndefined, Controller: ControllerUndefined}

// push appends an event to the back of the selection queue.
func (m *Menu) push(id ButtonID, controller ControllerID) {
	m.selections = append(m.selections, Selection{ButtonID: id, Controller: controller})
}

// ClearRecentSelections drops every queued event. AdvanceFrame calls this at
// the top of each frame, so events not consumed within the frame they were
// produced are discarded.
func (m *Menu) ClearRecentSelections() {
	m.selections = m.selections[:0]
}

// GetRecentSelection pops the oldest queued event, or NoSelection when the
// queue is empty. Events come out in the order they were queued.
func (m *Menu) GetRecentSelection() Selection {
	if len(m.selections) == 0 {
		return NoSelection
	}
	sel := m.selections[0]
	m.selections = m.selections[1:]
	return sel
}
