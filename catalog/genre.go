package catalog

import (
	"strings"

	"github.com/google/uuid"
)

const (
	maxGenreNameLength    = 200
	maxDisplayedGenres    = 3
	displayGenreSeparator = ", "
)

// Genre is a tag attached to many books.
type Genre struct {
	ID   uuid.UUID
	Name string
}

// BuildGenre creates a Genre with a fresh ID.
func BuildGenre(name string) Genre {
	return Genre{
		ID:   uuid.New(),
		Name: strings.TrimSpace(name),
	}
}

// Validate checks the field constraints of the genre.
func (g Genre) Validate() error {
	v := ValidationErrors{}
	checkRequired(v, "name", g.Name, maxGenreNameLength)

	return v.ErrOrNil()
}

// String returns the genre name.
func (g Genre) String() string {
	return g.Name
}

// DisplayGenre joins the names of at most the first three genres.
func DisplayGenre(genres []Genre) string {
	names := make([]string, 0, maxDisplayedGenres)
	for i, g := range genres {
		if i == maxDisplayedGenres {
			break
		}
		names = append(names, g.Name)
	}

	return strings.Join(names, displayGenreSeparator)
}
