package model

// Headshot is the image metadata attached to a directory profile.
type Headshot struct {
	ID       string `json:"id"`
	Alt      string `json:"alt"`
	Height   int    `json:"height"`
	Width    int    `json:"width"`
	MimeType string `json:"mimeType"`
	Type     string `json:"type"`
	URL      string `json:"url"`
}

// Profile is a full employee record as returned by the profile directory.
// The directory owns these records; this service only reads them.
type Profile struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	JobTitle    string   `json:"jobTitle"`
	Slug        string   `json:"slug"`
	SocialLinks []string `json:"socialLinks"`
	Type        string   `json:"type"`
	Headshot    Headshot `json:"headshot"`
}

// FullName returns the display name for the profile.
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Summary projects the profile down to what the client is allowed to see
// while guessing.
func (p Profile) Summary() ProfileSummary {
	return ProfileSummary{ID: p.ID, Headshot: p.Headshot}
}

// ProfileSummary exposes only the id and headshot, so the answer cannot be
// read out of the payload.
type ProfileSummary struct {
	ID       string   `json:"id"`
	Headshot Headshot `json:"headshot"`
}

// Hand is what the player gets for one turn: the name to find and the
// candidate profiles, target included, in sampled order.
type Hand struct {
	Name     string           `json:"name"`
	Profiles []ProfileSummary `json:"profiles"`
}

// HandResult reports how a played hand went.
type HandResult struct {
	Won  bool `json:"won"`
	Turn int  `json:"turn"`
}
