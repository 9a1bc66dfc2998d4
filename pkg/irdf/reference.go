package irdf

type TravelClass struct {
	Code string `json:"code" groups:"basic"`
	Name string `json:"name" groups:"basic"`
}

type Quota struct {
	Code string `json:"code" groups:"basic"`
	Name string `json:"name" groups:"basic"`
}

var TravelClasses = []TravelClass{
	{Code: "SL", Name: "Sleeper (SL)"},
	{Code: "3A", Name: "AC 3 Tier (3A)"},
	{Code: "2A", Name: "AC 2 Tier (2A)"},
	{Code: "1A", Name: "AC First Class (1A)"},
	{Code: "2S", Name: "Second Sitting (2S)"},
	{Code: "CC", Name: "Chair Car (CC)"},
	{Code: "3E", Name: "Third AC Economy (3E)"},
}

var Quotas = []Quota{
	{Code: "GN", Name: "General"},
	{Code: "TQ", Name: "Tatkal"},
	{Code: "LD", Name: "Ladies"},
	{Code: "SS", Name: "Senior Citizen"},
	{Code: "PH", Name: "Divyaang"},
	{Code: "DF", Name: "Duty Pass"},
}

// BookingAdvanceDays is how far ahead a journey date may be booked.
const BookingAdvanceDays = 120
