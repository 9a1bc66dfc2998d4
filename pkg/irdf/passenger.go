package irdf

type Passenger struct {
	ID      string `json:"id" groups:"detailed"`
	Name    string `json:"name" groups:"basic"`
	Age     int    `json:"age" groups:"basic"`
	Gender  string `json:"gender" groups:"basic"`
	Mobile  string `json:"mobile" groups:"detailed"`
	Email   string `json:"email" groups:"detailed"`
	Address string `json:"address" groups:"detailed"`

	Bookings []Booking `json:"bookings" groups:"detailed"`
}

// Booking belongs to exactly one Passenger. From and To hold station codes,
// not names. PNR uniqueness is assumed upstream but never enforced here.
type Booking struct {
	PNR         string  `json:"pnr" groups:"basic"`
	TrainNumber string  `json:"trainNumber" groups:"basic"`
	JourneyDate string  `json:"journeyDate" groups:"basic"` // "2006-01-02"
	From        string  `json:"from" groups:"basic"`
	To          string  `json:"to" groups:"basic"`
	ClassCode   string  `json:"classCode" groups:"basic"`
	SeatNumber  string  `json:"seatNumber" groups:"basic"`
	Fare        float64 `json:"fare" groups:"basic"`
	Status      string  `json:"status" groups:"basic"`
}

// UnknownTrainName is substituted when a booking references a train number
// absent from the catalog. The lookup never fails on a dangling reference.
const UnknownTrainName = "Unknown Train"

// PNRStatus is the read-only projection of a booking joined with its owning
// passenger and with train/station names resolved from the catalog.
type PNRStatus struct {
	PNR         string `json:"pnr" groups:"basic"`
	TrainNumber string `json:"trainNumber" groups:"basic"`
	TrainName   string `json:"trainName" groups:"basic"`

	JourneyDate string `json:"journeyDate" groups:"basic"`

	From            string `json:"from" groups:"basic"`
	To              string `json:"to" groups:"basic"`
	FromStationName string `json:"fromStationName" groups:"basic"`
	ToStationName   string `json:"toStationName" groups:"basic"`

	ClassCode  string  `json:"classCode" groups:"basic"`
	SeatNumber string  `json:"seatNumber" groups:"basic"`
	Fare       float64 `json:"fare" groups:"basic"`
	Status     string  `json:"status" groups:"basic"`

	Passenger PNRPassenger `json:"passenger" groups:"basic"`
}

type PNRPassenger struct {
	Name   string `json:"name" groups:"basic"`
	Age    int    `json:"age" groups:"basic"`
	Gender string `json:"gender" groups:"basic"`
}
