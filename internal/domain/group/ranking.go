package group

import "sort"

// Rank orders members by points descending. Ties keep join order, and every
// member gets a distinct 1-based position.
func Rank(members []MemberProfile) []RankedMember {
	out := make([]RankedMember, len(members))
	for i, member := range members {
		out[i] = RankedMember{MemberProfile: member}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Seq < out[j].Seq
	})

	for i := range out {
		out[i].Position = i + 1
	}
	return out
}
