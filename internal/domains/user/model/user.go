package model

// User is a registered member; username is unique and referenced
// by articles.author and comments.author.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
