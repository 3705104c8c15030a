package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Name", Humanize("name"))
	assert.Equal(t, "Email", Humanize("email"))
	assert.Equal(t, "Date Created", Humanize("dateCreated"))
	assert.Equal(t, "Role", Humanize("role"))

	// Only a lowercase-uppercase boundary gets a space
	assert.Equal(t, "Created At Utc", Humanize("createdAtUtc"))
	assert.Equal(t, "User ID", Humanize("userID"))
	assert.Equal(t, "URLPath", Humanize("URLPath"))
	assert.Equal(t, "User_id", Humanize("user_id"))
	assert.Equal(t, "Élan Vital", Humanize("élanVital"))
	assert.Equal(t, "", Humanize(""))
}

func TestHumanizeIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, "Date Created", Humanize("dateCreated"))
	}
}

func TestNamingConventionToLabel(t *testing.T) {
	nc := NewDefaultNaming()
	assert.NotNil(t, nc)
	assert.Equal(t, "Date Created", nc.ToLabel("dateCreated"))
	assert.Equal(t, "User_id", nc.ToLabel("user_id"))

	words := NewWordsNaming()
	assert.NotNil(t, words)
	assert.Equal(t, "Date Created", words.ToLabel("dateCreated"))
	assert.Equal(t, "User Id", words.ToLabel("user_id"))
	assert.Equal(t, "Address Street", words.ToLabel("address-street"))
	assert.Equal(t, "Name", words.ToLabel("name"))
}

func TestNaming(t *testing.T) {
	nc, err := Naming("")
	assert.NoError(t, err)
	assert.Equal(t, "Date Created", nc.ToLabel("dateCreated"))

	nc, err = Naming(NamingWords)
	assert.NoError(t, err)
	assert.Equal(t, "User Id", nc.ToLabel("user_id"))

	_, err = Naming("snake")
	assert.EqualError(t, err, "invalid naming convention: snake")
}
