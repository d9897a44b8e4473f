// Package game implements the Acey Ducey game engine.
//
// The main type is Engine, which owns the player's balance, the dealing
// shoe, and the game state machine, and resolves one betting round at a
// time. Input and output are external collaborators: an Agent supplies the
// player's raw bet and continue answers, a Display renders everything the
// game says.
//
// # Basic Usage
//
//	engine := game.New(game.Config{
//		Dealer:  deck.NewShoe(randutil.New(randutil.Seed())),
//		Agent:   agent,
//		Display: display,
//	})
//	err := engine.Run(ctx)
//
// # Deterministic Testing
//
// The Dealer interface lets tests script the exact deal sequence, and a
// scripted Agent replays canned input, so every branch of round resolution
// is reachable without randomness.
package game
