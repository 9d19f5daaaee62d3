package console

import (
	"bufio"
	"fmt"
	"io"

	"tictactoe-cli/internal/apperror"
)

// Console is the interactive input source and output sink of the game.
type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

func (that *Console) Writer() io.Writer {
	return that.writer
}

func (that *Console) Println(args ...any) {
	fmt.Fprintln(that.writer, args...)
}

func (that *Console) Printf(format string, args ...any) {
	fmt.Fprintf(that.writer, format, args...)
}

// PromptInt - prints the label and reads one integer. A non-numeric token is a
// hard ErrMalformedInput, not a retry.
func (that *Console) PromptInt(label string) (int, error) {
	fmt.Fprint(that.writer, label)

	var value int
	if _, err := fmt.Fscan(that.reader, &value); err != nil {
		return 0, fmt.Errorf("%w: expected a number: %v", apperror.ErrMalformedInput, err)
	}

	return value, nil
}

// PromptString - prints the label and reads one whitespace-delimited token.
func (that *Console) PromptString(label string) (string, error) {
	fmt.Fprint(that.writer, label)

	var value string
	if _, err := fmt.Fscan(that.reader, &value); err != nil {
		return "", fmt.Errorf("%w: expected a token: %v", apperror.ErrMalformedInput, err)
	}

	return value, nil
}

// RequestCoordinates - reads a "row col" pair the way the user types it, 1-based.
func (that *Console) RequestCoordinates() (int, int, error) {
	fmt.Fprint(that.writer, "Enter row and column (e.g., 1 1): ")

	var row, col int
	if _, err := fmt.Fscan(that.reader, &row, &col); err != nil {
		return 0, 0, fmt.Errorf("%w: expected two numbers: %v", apperror.ErrMalformedInput, err)
	}

	return row, col, nil
}
