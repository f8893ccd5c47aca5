package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/three-thirteen/domain/card"
	"github.com/luca-patrignani/three-thirteen/domain/game"
)

// Console is a line-based game.Prompter. Invalid answers are reported and
// asked again; "quit" or the end of the input ends the game.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", game.ErrQuit
		}
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "quit" || answer == "q" {
		return "", game.ErrQuit
	}
	return answer, nil
}

// PromptBool accepts "true" or "false" in any case.
func (c *Console) PromptBool(question string) (bool, error) {
	fmt.Fprint(c.out, pterm.Info.Sprintln(question))
	for {
		fmt.Fprintln(c.out, `Enter "true" or "false"`)
		answer, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch answer {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			fmt.Fprint(c.out, pterm.Error.Sprintln("Invalid input"))
		}
	}
}

// PromptIndex accepts an integer in [0, size-1].
func (c *Console) PromptIndex(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: nothing to choose from", game.ErrInvalidIndex)
	}
	last := size - 1
	for {
		fmt.Fprintf(c.out, "Please select which card you would like to discard by entering number between 0 and %d\n", last)
		answer, err := c.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprint(c.out, pterm.Error.Sprintfln("Invalid input: %q is not a number", answer))
			continue
		}
		if n < 0 || n > last {
			fmt.Fprint(c.out, pterm.Error.Sprintfln("Number must be between 0 and %d.", last))
			continue
		}
		return n, nil
	}
}

// ShowHand prints the hand as an indexed list.
func (c *Console) ShowHand(title string, hand []card.Card) {
	fmt.Fprintln(c.out, handBox(title, hand))
}

// ShowCards prints a card sequence by identity, one per line.
func (c *Console) ShowCards(title string, cards []card.Card) {
	fmt.Fprintln(c.out, pterm.DefaultSection.Sprint(title))
	for _, cd := range cards {
		fmt.Fprintln(c.out, cd.String())
	}
}

func (c *Console) Notify(msg string) {
	fmt.Fprint(c.out, pterm.Warning.Sprintln(msg))
}
