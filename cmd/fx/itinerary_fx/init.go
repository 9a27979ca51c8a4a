package itinerary_fx

import (
	"go.uber.org/fx"

	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(provideCandidateSource, provideItineraryService)

func provideCandidateSource(
	poiRepo repositories.POIRepository,
	cache mem.CandidateCache,
	suggester utils.POISuggestionClientInterface,
) services.CandidateSourceInterface {
	return services.NewCandidateService(poiRepo, cache, suggester)
}

func provideItineraryService(
	candidates services.CandidateSourceInterface,
	poiRepo repositories.POIRepository,
	journeyRepo repositories.JourneyRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(candidates, poiRepo, journeyRepo)
}
