package entity

type Client struct {
	ClientID  int64  `json:"client_id" db:"client_id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	BirthDate string `json:"birth_date" db:"birth_date"`
	Email     string `json:"email" db:"email"`
	Phone     string `json:"phone" db:"phone"`
}
