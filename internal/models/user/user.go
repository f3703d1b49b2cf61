package user

type User struct {
	ID       string `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // hash bcrypt, nunca sale en JSON
}
