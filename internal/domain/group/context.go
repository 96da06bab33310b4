package group

// ResolveContext derives what the viewer may see about g. IsAdmin follows
// ownership (AdminID), not the membership IsAdmin flag.
func ResolveContext(g Group, viewerUserID string, viewerMemberships []Member) ViewerContext {
	out := ViewerContext{
		IsAdmin: viewerUserID != "" && g.AdminID == viewerUserID,
	}
	for _, membership := range viewerMemberships {
		if membership.GroupID == g.ID && membership.UserID == viewerUserID {
			out.IsMember = true
			break
		}
	}
	return out
}
