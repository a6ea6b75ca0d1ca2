package types

import "fmt"

// Describer returns a human-readable description of itself.
type Describer interface {
	Describe() string
}

// Animal is a named animal.
type Animal struct {
	Name string `json:"name" yaml:"name"`
}

// Vehicle is a vehicle identified by model.
type Vehicle struct {
	Model string `json:"model" yaml:"model"`
}

var (
	_ Describer = Animal{}
	_ Describer = Vehicle{}
)

func (a Animal) Describe() string {
	return fmt.Sprintf("This is an animal named: %s", a.Name)
}

func (v Vehicle) Describe() string {
	return fmt.Sprintf("This is a vehicle with the model: %s", v.Model)
}
