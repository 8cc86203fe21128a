package crisis

import (
	"math/rand"

	"campus-crisis/card"
)

// selectCrisis draws the next crisis, avoiding titles already in used.
// When every catalog title has been used, the memory is cleared and the
// full catalog becomes eligible again. The returned card is a fresh copy;
// its needs map never aliases the catalog entry.
func selectCrisis(rng *rand.Rand, catalog *card.Catalog, used map[string]bool) card.CrisisCard {
	eligible := make([]card.CrisisCard, 0, len(catalog.Crises))
	for _, c := range catalog.Crises {
		if !used[c.Title] {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		for title := range used {
			delete(used, title)
		}
		eligible = catalog.Crises
	}
	chosen := eligible[rng.Intn(len(eligible))].Clone()
	used[chosen.Title] = true
	return chosen
}

// dealHand samples size role-eligible cards without replacement. A short
// hand signals a catalog configuration problem; Catalog.Validate guards
// against it at boot.
func dealHand(rng *rand.Rand, catalog *card.Catalog, role card.Role, size int) []card.ActionCard {
	pool := catalog.ActionsForRole(role)
	if len(pool) < size {
		return nil
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	hand := make([]card.ActionCard, size)
	copy(hand, pool[:size])
	return hand
}

// refillHand tops a hand back up to size. If no held card tag-matches the
// active crisis, a matching card is drawn first so the player is never
// stuck unable to address it. Remaining slots fill uniformly from the
// role pool, with replacement across successive draws.
func refillHand(rng *rand.Rand, catalog *card.Catalog, role card.Role, hand []card.ActionCard, crisisTags []string, size int) []card.ActionCard {
	pool := catalog.ActionsForRole(role)
	if len(pool) == 0 {
		return hand
	}

	if len(hand) < size && len(crisisTags) > 0 && !anyTagMatch(hand, crisisTags) {
		matching := make([]card.ActionCard, 0, len(pool))
		for _, c := range pool {
			if c.MatchesAnyTag(crisisTags) {
				matching = append(matching, c)
			}
		}
		if len(matching) > 0 {
			hand = append(hand, matching[rng.Intn(len(matching))])
		}
	}

	for len(hand) < size {
		hand = append(hand, pool[rng.Intn(len(pool))])
	}
	return hand
}

func anyTagMatch(hand []card.ActionCard, tags []string) bool {
	for _, c := range hand {
		if c.MatchesAnyTag(tags) {
			return true
		}
	}
	return false
}
