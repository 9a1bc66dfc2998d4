package routes

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/railbooker/railbooker/pkg/catalog"
	"github.com/railbooker/railbooker/pkg/irdf"
)

const journeyDateFormat = "2006-01-02"

// criteriaFromQuery builds search criteria from the request's query
// parameters. Unknown station codes leave the station nil, which the engine
// treats as an incomplete query yielding empty results.
func criteriaFromQuery(c *fiber.Ctx, snapshot *catalog.Catalog, advanced bool) (irdf.SearchCriteria, error) {
	dateParameter := c.Query("date")
	journeyDate, err := time.Parse(journeyDateFormat, dateParameter)
	if err != nil {
		return irdf.SearchCriteria{}, fmt.Errorf("parameter date should be formatted %s", journeyDateFormat)
	}

	today := irdf.TruncateToDay(time.Now())
	if journeyDate.After(today.AddDate(0, 0, irdf.BookingAdvanceDays)) {
		return irdf.SearchCriteria{}, fmt.Errorf("journey date is beyond the %d day booking window", irdf.BookingAdvanceDays)
	}

	return irdf.SearchCriteria{
		FromStation: snapshot.StationByCode(c.Query("from")),
		ToStation:   snapshot.StationByCode(c.Query("to")),

		JourneyDate: journeyDate,

		TrainClass: c.Query("class"),
		Quota:      c.Query("quota"),

		FlexibleWithDate: c.QueryBool("flexible", false),

		AdvancedSearch: advanced,
	}, nil
}
