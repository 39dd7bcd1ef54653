package domain

// Input is one answer given during a guided conversation: typed text or a pressed
// suggestion button.
type Input interface {
	Value() string
	isInput()
}

type FreeText struct {
	Text string
}

type Selection struct {
	Choice string
}

func (t FreeText) Value() string  { return t.Text }
func (s Selection) Value() string { return s.Choice }

func (FreeText) isInput()  {}
func (Selection) isInput() {}
