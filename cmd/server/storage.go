package main

import (
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/storage"
)

// InitStorage selects and returns the configured audio storage backend
func InitStorage(env Environment) storage.Storage {
	if env.UseSpaces {
		spacesStorage, err := storage.NewSpacesStorage(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesCDNURL,
			env.SpacesAccessKey,
			env.SpacesSecretKey,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Spaces storage")
		}
		log.Info().Str("cdn", env.SpacesCDNURL).Msg("using DigitalOcean Spaces audio storage")
		return spacesStorage
	}

	local := storage.NewLocalStorage(env.AudioDir, env.PublicBaseURL+"/audio")
	log.Info().Str("dir", env.AudioDir).Msg("using local audio storage")
	return local
}
