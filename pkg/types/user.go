package types

// User is a record with named fields.
type User struct {
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	Age      uint32 `json:"age" yaml:"age"`
	Active   bool   `json:"active" yaml:"active"`
}
