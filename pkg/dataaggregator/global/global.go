package global

import (
	"github.com/okiferry/okiferry/pkg/dataaggregator"
	"github.com/okiferry/okiferry/pkg/dataaggregator/source/databaselookup"
	"github.com/okiferry/okiferry/pkg/dataaggregator/source/departureboard"
	"github.com/okiferry/okiferry/pkg/dataaggregator/source/itineraryplanner"
)

func Setup() {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	dataaggregator.GlobalAggregator.RegisterSource(databaselookup.Source{})

	itineraryPlannerSource := itineraryplanner.Source{}
	itineraryPlannerSource = itineraryPlannerSource.Setup()
	dataaggregator.GlobalAggregator.RegisterSource(itineraryPlannerSource)

	dataaggregator.GlobalAggregator.RegisterSource(departureboard.Source{})
}
