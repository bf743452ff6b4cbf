package texasholdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"holdempro/internal/rng"
	"holdempro/pkg/deck"
	"holdempro/pkg/poker/action"
	"holdempro/pkg/poker/betting"
	"holdempro/pkg/poker/events"
	"holdempro/pkg/poker/handrank"
	"holdempro/pkg/poker/potledger"
)

// ErrHandOver is an error when an action is attempted after the hand ended
var ErrHandOver = errors.New("the hand is over")

// Game orchestrates a single hand of Texas hold'em from shuffle to payout.
// Seats are in table order: seats[0] posts the small blind and seats[1] the
// big blind. Heads-up, the small blind acts first pre-flop and last after.
type Game struct {
	logger  logrus.FieldLogger
	options Options
	seed    int64

	deck         *deck.Deck
	ledger       *potledger.Ledger
	participants map[int64]*Participant
	seatOrder    []int64

	community deck.Hand
	street    betting.Street
	round     *betting.Round
	state     DealerState

	trace    *events.Trace
	ranks    map[int64]handrank.HandRank
	plan     *potledger.DistributionPlan
	finished bool
}

// NewGame shuffles, seats the players, collects antes and blinds, and deals
// the hole cards. The returned game is waiting on the first pre-flop action
// unless the forced bets already put everyone all-in.
func NewGame(logger logrus.FieldLogger, seats []Seat, options Options) (*Game, error) {
	if err := options.Rules.Validate(); err != nil {
		return nil, err
	}

	if err := validateSeats(seats); err != nil {
		return nil, err
	}

	seed := options.Seed
	if seed == 0 {
		seed = rng.Seed()
	}

	d := deck.New()
	d.Shuffle(seed)

	g := &Game{
		logger:       logger.WithField("game", "texas-hold'em"),
		options:      options,
		seed:         seed,
		deck:         d,
		ledger:       potledger.New(),
		participants: make(map[int64]*Participant),
		state:        DealerStateStart,
		trace:        events.NewTrace(),
	}

	for _, seat := range seats {
		p := newParticipant(seat)
		if err := g.ledger.Seat(p); err != nil {
			return nil, err
		}

		g.participants[p.PlayerID] = p
		g.seatOrder = append(g.seatOrder, p.PlayerID)
	}

	g.logger = g.logger.WithField("hand", g.trace.HandID())

	if err := g.collectAntes(); err != nil {
		return nil, err
	}

	if err := g.dealHoleCards(); err != nil {
		return nil, err
	}

	if err := g.startPreFlop(); err != nil {
		return nil, err
	}

	return g, g.progress()
}

// CurrentTurn returns the ID of the player who must act next
func (g *Game) CurrentTurn() (int64, error) {
	if g.finished {
		return 0, ErrHandOver
	}

	p, err := g.round.CurrentTurn()
	if err != nil {
		return 0, err
	}

	return p.ID(), nil
}

// LegalActions returns the action set for the player currently on the clock
func (g *Game) LegalActions(id int64) (*betting.ActionSet, error) {
	if g.finished {
		return nil, ErrHandOver
	}

	return g.round.LegalActions(id)
}

// Act performs the action for the player and advances the hand as far as it
// can: through street transitions, an uncontested win, or the showdown. A
// rejected action leaves the hand untouched.
func (g *Game) Act(id int64, act action.Action, amount int) error {
	if g.finished {
		return ErrHandOver
	}

	if err := g.round.Act(id, act, amount); err != nil {
		return err
	}

	logAmount := amount
	if act == action.Call || act == action.AllIn {
		logAmount = g.round.SeatBet(id)
	}

	g.logger.WithFields(logrus.Fields{
		"player": g.participants[id].Name,
		"street": g.street.String(),
	}).Info(act.LogMessage(logAmount))

	g.trace.Append(events.Event{
		Type:     events.TypeAction,
		PlayerID: id,
		Street:   g.street.String(),
		Action:   string(act),
		Amount:   g.round.SeatBet(id),
	})

	return g.progress()
}

// Community returns the community cards dealt so far
func (g *Game) Community() deck.Hand {
	return g.community.Clone()
}

// Street returns the current betting street
func (g *Game) Street() betting.Street {
	return g.street
}

// State returns the dealer state
func (g *Game) State() DealerState {
	return g.state
}

// Finished returns true once the pots have been paid
func (g *Game) Finished() bool {
	return g.finished
}

// Seed returns the shuffle seed used for this hand
func (g *Game) Seed() int64 {
	return g.seed
}

// Trace returns the hand's event trace
func (g *Game) Trace() *events.Trace {
	return g.trace
}

// Participant returns the participant with the given ID, or nil
func (g *Game) Participant(id int64) *Participant {
	return g.participants[id]
}

func (g *Game) collectAntes() error {
	ante := g.options.Rules.Ante
	if ante == 0 {
		return nil
	}

	for _, id := range g.seatOrder {
		p := g.participants[id]
		amount := ante
		if amount > p.Balance() {
			amount = p.Balance()
		}

		if err := g.ledger.Commit(id, amount); err != nil {
			return err
		}

		g.trace.Append(events.Event{
			Type:     events.TypeAction,
			PlayerID: id,
			Street:   g.street.String(),
			Action:   "ante",
			Amount:   amount,
		})
	}

	return nil
}

func (g *Game) dealHoleCards() error {
	// two passes, as if dealt around the table
	for i := 0; i < 2; i++ {
		for _, id := range g.seatOrder {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			g.participants[id].cards.AddCard(card)
		}
	}

	for _, id := range g.seatOrder {
		g.trace.Append(events.Event{
			Type:     events.TypeDeal,
			PlayerID: id,
			Cards:    g.participants[id].Cards(),
		})
	}

	return nil
}

func (g *Game) startPreFlop() error {
	round, err := g.newRound(betting.PreFlop)
	if err != nil {
		return err
	}
	g.round = round
	g.state = DealerStatePreFlopBetting

	blinds := []struct {
		id     int64
		amount int
		name   string
	}{
		{g.seatOrder[0], g.options.Rules.SmallBlind, "small-blind"},
		{g.seatOrder[1], g.options.Rules.BigBlind, "big-blind"},
	}

	for _, blind := range blinds {
		posted := blind.amount
		if balance := g.participants[blind.id].Balance(); posted > balance {
			posted = balance
		}

		if err := g.round.PostBlind(blind.id, blind.amount); err != nil {
			return err
		}

		g.trace.Append(events.Event{
			Type:     events.TypeAction,
			PlayerID: blind.id,
			Street:   g.street.String(),
			Action:   blind.name,
			Amount:   posted,
		})
	}

	return nil
}

// newRound builds a betting round with the seats rotated into action order
func (g *Game) newRound(street betting.Street) (*betting.Round, error) {
	n := len(g.seatOrder)

	start := 0
	if street == betting.PreFlop {
		if n > 2 {
			// under the gun is left of the big blind
			start = 2
		}
	} else if n == 2 {
		// heads-up, the big blind leads after the flop
		start = 1
	}

	participants := make([]betting.Participant, 0, n)
	for i := 0; i < n; i++ {
		participants = append(participants, g.participants[g.seatOrder[(start+i)%n]])
	}

	return betting.NewRound(g.options.Rules, street, g.ledger, participants)
}

// progress advances the hand while no player decision is pending
func (g *Game) progress() error {
	for g.round.IsOver() && !g.finished {
		if g.round.Contenders() == 1 {
			return g.concludeUncontested()
		}

		if g.street == betting.River {
			return g.showdown()
		}

		if err := g.nextStreet(); err != nil {
			return err
		}
	}

	return nil
}

func (g *Game) nextStreet() error {
	g.ledger.NextStreet()
	g.street++

	count := 1
	if g.street == betting.Flop {
		count = 3
	}

	dealt, err := g.dealCommunity(count)
	if err != nil {
		return err
	}

	g.trace.Append(events.Event{
		Type:   events.TypeStreet,
		Street: g.street.String(),
		Cards:  dealt,
	})

	g.logger.WithField("street", g.street.String()).
		Infof("dealt %s", g.community.String())

	round, err := g.newRound(g.street)
	if err != nil {
		return err
	}
	g.round = round

	switch g.street {
	case betting.Flop:
		g.state = DealerStateFlopBetting
	case betting.Turn:
		g.state = DealerStateTurnBetting
	case betting.River:
		g.state = DealerStateRiverBetting
	}

	return nil
}

func (g *Game) dealCommunity(count int) (deck.Hand, error) {
	if err := g.deck.Burn(); err != nil {
		return nil, err
	}

	dealt := make(deck.Hand, 0, count)
	for i := 0; i < count; i++ {
		card, err := g.deck.Draw()
		if err != nil {
			return nil, err
		}

		dealt.AddCard(card)
		g.community.AddCard(card)
	}

	return dealt, nil
}

func (g *Game) concludeUncontested() error {
	var winner int64 = -1
	for _, id := range g.seatOrder {
		if !g.ledger.HasFolded(id) {
			winner = id
			break
		}
	}

	if winner < 0 {
		return errors.New("every player has folded")
	}

	plan, err := g.ledger.AwardAll(winner)
	if err != nil {
		return err
	}

	return g.conclude(plan)
}

func (g *Game) showdown() error {
	g.state = DealerStateRevealWinner
	g.ranks = make(map[int64]handrank.HandRank)

	for _, id := range g.seatOrder {
		if g.ledger.HasFolded(id) {
			continue
		}

		p := g.participants[id]
		cards := append(p.Cards(), g.community...)
		rank, err := handrank.Evaluate(cards)
		if err != nil {
			return fmt.Errorf("could not evaluate the hand for player %d: %w", id, err)
		}

		g.ranks[id] = rank
		g.trace.Append(events.Event{
			Type:     events.TypeShowdown,
			PlayerID: id,
			Cards:    p.Cards(),
			Hand:     rank.String(),
		})

		g.logger.WithField("player", p.Name).
			Infof("shows %s (%s)", p.cards.String(), rank.String())
	}

	plan, err := g.ledger.Distribute(g.ranks)
	if err != nil {
		return err
	}

	return g.conclude(plan)
}

func (g *Game) conclude(plan *potledger.DistributionPlan) error {
	g.plan = plan
	g.finished = true
	g.state = DealerStateEnd

	for i, award := range plan.Awards {
		g.trace.Append(events.Event{
			Type:     events.TypePotAward,
			PotIndex: i,
			Amount:   award.Amount,
			Winners:  award.Winners,
			Payouts:  award.Payouts,
		})

		for _, id := range award.Winners {
			g.logger.WithFields(logrus.Fields{
				"player": g.participants[id].Name,
				"pot":    i,
			}).Infof("won ${%d}", award.Payouts[id])
		}
	}

	return nil
}
