package analysis

// entitySet is one merge namespace: a keyed map plus first-insertion order.
// Food items, drinks and aspects each get their own set, so a food item and
// an aspect may share a name without colliding.
type entitySet struct {
	byName map[string]*Entity
	order  []string
}

func newEntitySet() *entitySet {
	return &entitySet{byName: map[string]*Entity{}}
}

// merge folds one normalized entity into the set. First sighting inserts the
// entity unchanged; a rediscovery adds mention counts, concatenates review
// attributions, and blends sentiment as a plain two-term average of the
// running value and the incoming batch value. The blend is not weighted by
// mention count, so batch order affects the result once more than two
// batches touch the same name.
func (s *entitySet) merge(in Entity) {
	in.Sentiment = clampSentiment(in.Sentiment)
	cur, ok := s.byName[in.Name]
	if !ok {
		e := in
		e.RelatedReviews = append([]ReviewRef(nil), in.RelatedReviews...)
		s.byName[in.Name] = &e
		s.order = append(s.order, in.Name)
		return
	}
	cur.MentionCount += in.MentionCount
	cur.RelatedReviews = append(cur.RelatedReviews, in.RelatedReviews...)
	cur.Sentiment = (cur.Sentiment + in.Sentiment) / 2
	// Category/description keep their first-seen value.
}

// values returns the set's entities in first-insertion order.
func (s *entitySet) values() []Entity {
	out := make([]Entity, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.byName[name])
	}
	return out
}

// Accumulator is the running cross-batch state of one analysis run: three
// independent entity namespaces. It is the only mutable state shared across
// the sequential batch loop; callers that parallelize batch calls must
// serialize MergeBatch.
type Accumulator struct {
	food    *entitySet
	drinks  *entitySet
	aspects *entitySet
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		food:    newEntitySet(),
		drinks:  newEntitySet(),
		aspects: newEntitySet(),
	}
}

// MergeBatch folds one normalized batch result into the running maps.
func (a *Accumulator) MergeBatch(br BatchResult) {
	for _, e := range br.FoodItems {
		a.food.merge(e)
	}
	for _, e := range br.Drinks {
		a.drinks.merge(e)
	}
	for _, e := range br.Aspects {
		a.aspects.merge(e)
	}
}

// FoodItems returns merged food items in discovery order.
func (a *Accumulator) FoodItems() []Entity { return a.food.values() }

// Drinks returns merged drinks in discovery order.
func (a *Accumulator) Drinks() []Entity { return a.drinks.values() }

// Aspects returns merged aspects in discovery order.
func (a *Accumulator) Aspects() []Entity { return a.aspects.values() }

func clampSentiment(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
