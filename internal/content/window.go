package content

// Load-more step sizes matching the public views.
const (
	BlogStep        = 4
	ProjectStep     = 3
	SectionPostStep = 10
)

// Window is the visible slice of an already-fetched list: a fixed-step
// "load more" counter, never a server-side cursor.
type Window struct {
	Total   int
	Visible int
	Step    int
}

func NewWindow(total, initial, step int) Window {
	w := Window{Total: total, Step: step}
	w.Visible = clamp(initial, total)
	return w
}

// More advances the window by one step. Visible never exceeds Total and
// never decreases.
func (w Window) More() Window {
	w.Visible = clamp(w.Visible+w.Step, w.Total)
	return w
}

func (w Window) HasMore() bool {
	return w.Visible < w.Total
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
