package domain

// Joke is the single entity served by the API.
type Joke struct {
	// ID is assigned by the store at creation and never reused.
	ID string

	// Type is an integer category code. Several jokes may share a type.
	Type int

	Setup     string
	Punchline string

	// Version is the store-maintained revision counter.
	Version int
}

// JokeFields carries caller-supplied joke fields. A nil field is absent:
// creation requires all of them, an update only touches the present ones.
type JokeFields struct {
	Type      *int
	Setup     *string
	Punchline *string
}

// Empty reports whether no field is present.
func (f JokeFields) Empty() bool {
	return f.Type == nil && f.Setup == nil && f.Punchline == nil
}

// Apply overwrites the present fields on j.
func (f JokeFields) Apply(j *Joke) {
	if f.Type != nil {
		j.Type = *f.Type
	}
	if f.Setup != nil {
		j.Setup = *f.Setup
	}
	if f.Punchline != nil {
		j.Punchline = *f.Punchline
	}
}
