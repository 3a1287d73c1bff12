package boardstate

import (
	"math/rand"

	"github.com/vxm/isotopeboat/entities"
)

// Transition pairs a successor state with the action that produced it.
type Transition struct {
	State  BoardState
	Action entities.Action
}

// Neighbors enumerates every legal successor of s, trying movable
// entities in the fixed order [Boat, Alligators by index, Turtles by
// index] and, within each entity, its LegalActions in their declared
// order. With no external shuffling this is fully deterministic.
func Neighbors(s BoardState) []Transition {
	return neighbors(s, nil)
}

// NeighborsShuffled behaves like Neighbors but visits each entity's
// action list in an order permuted by rng. It exists for search
// algorithms that want to diversify exploration; reproducibility only
// requires seeding rng deterministically (spec 4.4).
func NeighborsShuffled(s BoardState, rng *rand.Rand) []Transition {
	return neighbors(s, rng)
}

func neighbors(s BoardState, rng *rand.Rand) []Transition {
	var out []Transition

	tryActions := func(actions []entities.Action) {
		if rng != nil {
			rng.Shuffle(len(actions), func(i, j int) { actions[i], actions[j] = actions[j], actions[i] })
		}
		for _, a := range actions {
			if next, ok := ApplyAction(s, a); ok {
				out = append(out, Transition{State: next, Action: a})
			}
		}
	}

	tryActions(s.Boat.LegalActions())
	for _, a := range s.Alligators {
		tryActions(a.LegalActions())
	}
	for _, t := range s.Turtles {
		tryActions(t.LegalActions())
	}

	return out
}
