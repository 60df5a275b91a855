package itineraryplanner

import (
	"reflect"

	"github.com/eko/gocache/lib/v4/cache"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/okiferry/okiferry/pkg/dataaggregator/query"
	"github.com/okiferry/okiferry/pkg/dataaggregator/source"
	"github.com/okiferry/okiferry/pkg/ftdf"
	"github.com/okiferry/okiferry/pkg/redis_client"
)

type Source struct {
	statusSnapshotStore *cache.Cache[string]
}

func (s Source) GetName() string {
	return "Itinerary Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ftdf.Itinerary{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.ItineraryPlan:
		return s.ItineraryPlanQuery(q.(query.ItineraryPlan))
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) Setup() Source {
	redisStore := redisstore.NewRedis(redis_client.Client)

	s.statusSnapshotStore = cache.New[string](redisStore)

	return s
}
