package handlers

// Hooks for the external test package.
var (
	RecentNews   = recentNews
	NewsComments = newsComments
)
