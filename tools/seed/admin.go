package main

import (
	"fmt"
	"strings"

	"camerastore/models"

	"github.com/spf13/viper"
)

// adminEnv maps each required seed variable to the account field it fills.
var adminEnv = []struct {
	key string
	set func(*models.UserInput, string)
}{
	{"SEED_ADMIN_EMAIL", func(in *models.UserInput, v string) { in.Email = v }},
	{"SEED_ADMIN_PASSWORD", func(in *models.UserInput, v string) { in.Password = v }},
	{"SEED_ADMIN_NAME", func(in *models.UserInput, v string) { in.FullName = v }},
	{"SEED_ADMIN_PHONE", func(in *models.UserInput, v string) { in.PhoneNumber = v }},
}

// adminInput builds the first administrator from the environment and names
// every missing variable at once.
func adminInput() (models.UserInput, error) {
	var (
		in      models.UserInput
		missing []string
	)
	for _, e := range adminEnv {
		v := strings.TrimSpace(viper.GetString(e.key))
		if v == "" {
			missing = append(missing, e.key)
			continue
		}
		e.set(&in, v)
	}
	if len(missing) > 0 {
		return in, fmt.Errorf("missing seed variables: %s", strings.Join(missing, ", "))
	}
	return in, nil
}
