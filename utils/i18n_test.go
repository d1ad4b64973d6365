package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLocalize(t *testing.T) {
	assert.Equal(t, "Invalid email or password.", Localize(MsgInvalidCredentials))
	assert.Equal(t, "אימייל או סיסמה שגויים", Localize(MsgInvalidCredentials, "he-IL,he;q=0.9,en;q=0.8"))
	assert.Equal(t, "Invalid email or password.", Localize(MsgInvalidCredentials, "fr-FR"))
}

func TestEveryMessageHasHebrew(t *testing.T) {
	en := messages[language.English]
	he := messages[language.Hebrew]
	for id := range en {
		assert.NotEmpty(t, he[id], "missing hebrew text for %s", id)
	}
}
