package dto

import "jokesapi/src/core/domain"

// JokeRequest is the body of POST /jokes/post and PUT /jokes/update/:id,
// sent as JSON or as a urlencoded form. Presence is checked by the store
// schema, not by binding tags, so every field is optional here. A JSON null
// counts as absent.
type JokeRequest struct {
	Type      *int    `json:"type" form:"type"`
	Setup     *string `json:"setup" form:"setup"`
	Punchline *string `json:"punchline" form:"punchline"`
}

// ToFields converts the request into domain fields.
func (r JokeRequest) ToFields() domain.JokeFields {
	return domain.JokeFields{
		Type:      r.Type,
		Setup:     r.Setup,
		Punchline: r.Punchline,
	}
}

// JokeResponse is the wire shape of a joke.
type JokeResponse struct {
	ID        string `json:"_id"`
	Type      int    `json:"type"`
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
	Version   int    `json:"__v"`
}

// FromJoke converts a domain joke.
func FromJoke(j domain.Joke) JokeResponse {
	return JokeResponse{
		ID:        j.ID,
		Type:      j.Type,
		Setup:     j.Setup,
		Punchline: j.Punchline,
		Version:   j.Version,
	}
}

// FromJokePtr converts an optional joke; nil stays nil so it encodes as null.
func FromJokePtr(j *domain.Joke) *JokeResponse {
	if j == nil {
		return nil
	}
	out := FromJoke(*j)
	return &out
}

// FromJokes converts a list, always returning a non-nil slice so it
// encodes as [] rather than null.
func FromJokes(jokes []domain.Joke) []JokeResponse {
	out := make([]JokeResponse, 0, len(jokes))
	for _, j := range jokes {
		out = append(out, FromJoke(j))
	}
	return out
}
