package backend

import "golang.org/x/text/width"

// NormalizeWidth folds full-width characters such as "［１，２］" to their
// narrow forms.
func NormalizeWidth(line string) string {
	return width.Narrow.String(line)
}

// MapInput returns an input that applies fn to every line of in before it is
// returned or tested for the end of the session.
func MapInput(in InputProvider, fn func(string) string) InputProvider {
	return &mappedInput{InputProvider: in, fn: fn}
}

type mappedInput struct {
	InputProvider
	fn func(string) string
}

func (m *mappedInput) NextLine() (string, error) {
	line, err := m.InputProvider.NextLine()
	if err != nil {
		return "", err
	}
	return m.fn(line), nil
}
