package main

import (
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/three-thirteen/domain/game"
)

func getActionPanel(b game.Record, actor int) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	actionString := ""
	switch b.Type {
	case game.ActionPickupPile:
		actionString = pterm.Sprintfln("Player %d picked up %s from the pile", actor, b.Card)
	case game.ActionPickupDeck:
		actionString = pterm.Sprintfln("Player %d picked up a card from the deck", actor)
		if b.Refill > 0 {
			actionString += pterm.Sprintfln("%d cards were shuffled back into the deck", b.Refill)
		}
	case game.ActionDiscard:
		actionString = pterm.Sprintfln("Player %d discarded %s", actor, b.Card)
	default:
		actionString = pterm.Sprintfln("Player %d performed action: %s", actor, b.Type)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|LAST ACTION|")).WithTitleTopCenter().Sprint(actionString)}
}

// printLastAction renders the most recent turn of g: the pickup and the
// discard that ended it.
func printLastAction(g *game.Game) {
	blocks := g.History().Blocks()
	var panels []pterm.Panel
	for i := len(blocks) - 1; i > 0 && len(panels) < 2; i-- {
		rec, ok := blocks[i].Action.(game.Record)
		if !ok {
			continue
		}
		panels = append([]pterm.Panel{getActionPanel(rec, blocks[i].Actor)}, panels...)
	}
	if len(panels) == 0 {
		return
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels, {getBoardPanel(g)}}).Render()
}

func getBoardPanel(g *game.Game) pterm.Panel {
	pile := pterm.LightRed("empty")
	if top, ok := g.Pile().Top(); ok {
		pile = top.String()
	}
	info := pterm.Sprintfln("Deck: %d cards\nPile: %s (%d cards)\nNext: Player %d",
		g.Deck().Len(), pile, g.Pile().Len(), g.Current().Id)
	return pterm.Panel{Data: pterm.BgGreen.Sprint(info)}
}

func getFinishPanel(g *game.Game) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	reason, _ := g.Finished()
	infoString := ""
	switch reason {
	case game.ReasonEmptyHand:
		infoString = pterm.Sprintfln("%s emptied their hand", pterm.LightCyan(pterm.Sprintf("Player %d", lastActor(g))))
	default:
		infoString = pterm.Sprintfln("%s left the game", pterm.LightCyan(pterm.Sprintf("Player %d", lastActor(g))))
	}
	infoString += pterm.Sprintfln("Turns played: %d", g.Turns())
	if err := g.History().Verify(); err != nil {
		infoString += pterm.LightRed("History check failed: " + err.Error())
	} else {
		infoString += pterm.LightGreen(pterm.Sprintf("History verified (%d blocks)", g.History().Len()))
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().Sprint(infoString)}
}

func lastActor(g *game.Game) int {
	b, err := g.History().Latest()
	if err != nil {
		return -1
	}
	return b.Actor
}
