package handlers

// AppHandlers collects every route handler for registration. FileHandler is
// nil when the storage backend serves its own URLs.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	CastingHandler  *CastingHandler
	SponsorHandler  *SponsorHandler
	MovieHandler    *MovieHandler
	SettingsHandler *SettingsHandler
	FileHandler     *FileHandler
}
