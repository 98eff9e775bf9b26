package draft

import "fmt"

// GroupKey is what entries are displayed together by: muscle group and
// variation for strength entries, the activity for cardio entries.
type GroupKey struct {
	Kind          Kind
	MuscleGroupID int64
	VariationID   int64
	ActivityID    int64
}

func (k GroupKey) String() string {
	if k.Kind == KindCardio {
		return fmt.Sprintf("cardio:%d", k.ActivityID)
	}
	return fmt.Sprintf("strength:%d:%d", k.MuscleGroupID, k.VariationID)
}

type Group struct {
	Key     GroupKey
	Entries []Entry
}

func keyOf(e Entry) GroupKey {
	if e.Kind == KindCardio && e.Cardio != nil {
		return GroupKey{Kind: KindCardio, ActivityID: e.Cardio.ActivityID}
	}
	if e.Strength == nil {
		return GroupKey{Kind: e.Kind}
	}
	return GroupKey{
		Kind:          KindStrength,
		MuscleGroupID: e.Strength.MuscleGroupID,
		VariationID:   e.Strength.VariationID,
	}
}

// groups are ordered by the first appearance of their key, entries within a
// group keep insertion order
func groupEntries(entries []Entry) []Group {
	groups := make([]Group, 0)
	index := make(map[GroupKey]int)
	for _, e := range entries {
		key := keyOf(e)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Entries = append(groups[i].Entries, e.clone())
	}
	return groups
}
