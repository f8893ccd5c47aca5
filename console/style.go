package console

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/three-thirteen/domain/card"
)

func handBox(title string, hand []card.Card) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var b strings.Builder
	for i, c := range hand {
		b.WriteString(pterm.Sprintf("%2d: %s (%s)\n", i, c.String(), c.Face()))
	}
	if len(hand) == 0 {
		b.WriteString(pterm.LightRed("empty hand") + "\n")
	}
	return pbox.WithTitle(pterm.LightCyan(title)).WithTitleTopLeft().Sprint(strings.TrimSuffix(b.String(), "\n"))
}
