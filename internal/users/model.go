package users

type User struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt hash, never the plaintext
}
