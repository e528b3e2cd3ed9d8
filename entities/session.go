package entities

// Session is the signed-in user's API token and the name shown to them
type Session struct {
	Token       string
	DisplayName string
}
